// File: internal/handler/contact.go
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jdgk-cms/internal/api"
	"jdgk-cms/internal/mail"
	"jdgk-cms/internal/metrics"
	"jdgk-cms/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

const contactSendTimeout = 30 * time.Second

// ContactDeps 聯絡表單需要的背景寄信元件
type ContactDeps struct {
	Pool    worker.Pool
	Sender  mail.Sender
	To      string
	Metrics *metrics.Metrics
}

// ContactHandler 驗證表單後把通知信排入背景佇列
// @Summary     Submit the contact form
// @Description 欄位中的 HTML 會被移除；信件在背景寄出
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       body body     api.ContactRequest true "聯絡表單"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.HTTPError
// @Failure     429  {object} api.HTTPError
// @Failure     503  {object} api.HTTPError
// @Router      /contact [post]
func ContactHandler(deps ContactDeps) echo.HandlerFunc {
	policy := bluemonday.StrictPolicy()
	return func(c echo.Context) error {
		var req api.ContactRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		msg := contactMessage(policy, req, deps.To)
		err := deps.Pool.Submit(worker.Task{
			Name:    "contact-email",
			Timeout: contactSendTimeout,
			Run: func(ctx context.Context) error {
				return deps.Sender.Send(ctx, msg)
			},
		})
		if err != nil {
			deps.count("rejected")
			if errors.Is(err, worker.ErrQueueFull) || errors.Is(err, worker.ErrStopped) {
				return c.JSON(http.StatusServiceUnavailable, api.HTTPError{Message: "contact service busy, try again later"})
			}
			return respondError(c, err)
		}
		deps.count("queued")
		// 只代表已排入佇列，寄送結果記在 worker 的 log
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Message received"})
	}
}

func (d ContactDeps) count(result string) {
	if d.Metrics != nil {
		d.Metrics.ContactMessages.WithLabelValues(result).Inc()
	}
}

func contactMessage(p *bluemonday.Policy, req api.ContactRequest, to string) mail.Message {
	clean := func(s string) string { return strings.TrimSpace(p.Sanitize(s)) }
	opt := func(s *string) string {
		if s == nil {
			return "-"
		}
		return clean(*s)
	}

	name := clean(req.Name)
	var b strings.Builder
	b.WriteString("New Contact Form Submission\n\n")
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", clean(req.Email))
	fmt.Fprintf(&b, "Company: %s\n", opt(req.Company))
	fmt.Fprintf(&b, "Phone: %s\n", opt(req.Phone))
	fmt.Fprintf(&b, "Service: %s\n\n", opt(req.Service))
	b.WriteString("Message:\n")
	b.WriteString(clean(req.Message))
	b.WriteString("\n")

	return mail.Message{
		To:      []string{to},
		ReplyTo: req.Email,
		Subject: "New Inquiry from " + name,
		Body:    b.String(),
	}
}
