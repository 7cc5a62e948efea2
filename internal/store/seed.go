// File: internal/store/seed.go
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
	"jdgk-cms/internal/service"
)

// SeedOptions 預設管理員帳號
type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

var hashPassword = service.HashPassword

// Seed 建立預設管理員與系統頁面；已存在的資料不會被覆寫，可重複執行
func Seed(ctx context.Context, db database.Querier, opts SeedOptions, logger *slog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(opts.AdminEmail))
	admin, err := GetUserByEmail(ctx, db, email)
	if err != nil {
		return fmt.Errorf("Seed: %w", err)
	}
	if admin == nil {
		hash, err := hashPassword(opts.AdminPassword)
		if err != nil {
			return fmt.Errorf("Seed: hash admin password: %w", err)
		}
		name := opts.AdminName
		if _, err := CreateUser(ctx, db, &model.User{
			Email:          email,
			HashedPassword: hash,
			FullName:       &name,
			Role:           model.RoleAdmin,
		}); err != nil {
			return fmt.Errorf("Seed: %w", err)
		}
		logger.Info("seeded default admin user", "email", email)
	}

	for _, p := range defaultPages() {
		existing, err := GetPageBySlug(ctx, db, p.Slug)
		if err != nil {
			return fmt.Errorf("Seed: %w", err)
		}
		if existing != nil {
			continue
		}
		if _, err := CreatePage(ctx, db, &p); err != nil {
			return fmt.Errorf("Seed: %w", err)
		}
		logger.Info("seeded default page", "slug", p.Slug)
	}
	return nil
}

func defaultPages() []model.Page {
	return []model.Page{
		{
			Title:    "Home",
			Slug:     "home",
			Status:   model.PageStatusPublished,
			PageType: model.PageTypeSystem,
			Content: map[string]any{
				"hero": map[string]any{
					"title":       "Professional Call Center Solutions",
					"subtitle":    "Excellence in Service",
					"description": "Transforming customer service with dedicated professionals and cutting-edge technology.",
					"cta_text":    "Get Started",
					"cta_link":    "/contact",
				},
				"services": map[string]any{
					"title":       "Our Services",
					"description": "Comprehensive BPO solutions tailored to your needs.",
				},
			},
		},
		{
			Title:    "About Us",
			Slug:     "about",
			Status:   model.PageStatusPublished,
			PageType: model.PageTypeSystem,
			Content: map[string]any{
				"hero": map[string]any{
					"title":       "About JDGK Business Solutions",
					"description": "Your trusted partner in business process outsourcing.",
				},
				"mission": map[string]any{
					"title":       "Our Mission",
					"description": "To provide exceptional service that drives growth for our clients.",
				},
				"vision": map[string]any{
					"title":       "Our Vision",
					"description": "To be the leading BPO provider in the Philippines.",
				},
				"values": []any{
					map[string]any{"title": "Integrity", "description": "We act with honesty and transparency."},
					map[string]any{"title": "Excellence", "description": "We strive for perfection in everything we do."},
					map[string]any{"title": "Innovation", "description": "We embrace new technologies and methods."},
					map[string]any{"title": "Teamwork", "description": "We achieve more together."},
				},
			},
		},
		{
			Title:    "Contact Us",
			Slug:     "contact",
			Status:   model.PageStatusPublished,
			PageType: model.PageTypeSystem,
			Content: map[string]any{
				"hero": map[string]any{
					"title":       "Contact Us",
					"description": "Get in touch with our team today.",
				},
				"contact_info": map[string]any{
					"phone": map[string]any{"main": "+63 2 1234 5678", "sales": "+63 2 1234 5679", "support": "+63 2 1234 5680"},
					"email": map[string]any{"general": "info@jdgkbsi.ph", "sales": "sales@jdgkbsi.ph", "support": "support@jdgkbsi.ph"},
					"address": map[string]any{
						"street": "123 Business Ave",
						"city":   "Makati City",
						"hours":  "Mon-Fri 9AM-6PM",
					},
				},
				"form": map[string]any{
					"title":       "Send us a message",
					"description": "We'll get back to you within 24 hours.",
				},
			},
		},
	}
}
