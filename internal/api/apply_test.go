package api

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"jdgk-cms/internal/model"

	"github.com/stretchr/testify/require"
)

type applier[M any] interface {
	ApplyTo(*M)
}

func jsonName(f reflect.StructField) string {
	return strings.Split(f.Tag.Get("json"), ",")[0]
}

// checkSingleFieldUpdates 對 R 的每個欄位各送一次只含該欄位的 body，
// 確認 ApplyTo 只改到同名的 model 欄位，值取自 changed，其餘維持 base。
func checkSingleFieldUpdates[R applier[M], M any](t *testing.T, base, changed M) {
	t.Helper()
	raw, err := json.Marshal(changed)
	require.NoError(t, err)
	var values map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &values))

	modelType := reflect.TypeOf(base)
	reqType := reflect.TypeOf(*new(R))
	for i := 0; i < reqType.NumField(); i++ {
		name := jsonName(reqType.Field(i))
		t.Run(name, func(t *testing.T) {
			v, ok := values[name]
			require.True(t, ok, "model has no json field %q", name)

			var req R
			require.NoError(t, json.Unmarshal([]byte(`{"`+name+`":`+string(v)+`}`), &req))
			got := base
			req.ApplyTo(&got)

			gv, bv, cv := reflect.ValueOf(got), reflect.ValueOf(base), reflect.ValueOf(changed)
			for j := 0; j < modelType.NumField(); j++ {
				field := modelType.Field(j)
				want := bv.Field(j).Interface()
				if jsonName(field) == name {
					want = cv.Field(j).Interface()
				}
				require.Equal(t, want, gv.Field(j).Interface(), "field %s", field.Name)
			}
		})
	}
}

func TestUpdateRequests_SingleFieldTouchesOnlyItself(t *testing.T) {
	d1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("page", func(t *testing.T) {
		checkSingleFieldUpdates[UpdatePageRequest](t,
			model.Page{ID: "p1", Title: "Home", Slug: "home", Content: map[string]any{"a": "1"},
				Status: model.PageStatusDraft, PageType: model.PageTypeCustom, CreatedAt: d1},
			model.Page{ID: "p1", Title: "Start", Slug: "start", Content: map[string]any{"b": "2"},
				MetaTitle: strPtr("mt"), MetaDescription: strPtr("md"), FeaturedImage: strPtr("/f.png"),
				Status: model.PageStatusArchived, PageType: model.PageTypeSystem, CreatedAt: d1},
		)
	})

	t.Run("service", func(t *testing.T) {
		checkSingleFieldUpdates[UpdateServiceRequest](t,
			model.Service{ID: "s1", Title: "Audit", Slug: "audit", Category: "accounting", CreatedAt: d1},
			model.Service{ID: "s1", Title: "Tax", Slug: "tax", Description: strPtr("d"), Category: "tax",
				Features: []string{"f"}, PricingInfo: strPtr("p"), Icon: strPtr("i"), ImageURL: strPtr("/i.png"),
				SortOrder: 7, IsFeatured: true, CreatedAt: d1},
		)
	})

	t.Run("blog post", func(t *testing.T) {
		checkSingleFieldUpdates[UpdateBlogPostRequest](t,
			model.BlogPost{ID: "b1", Title: "A", Slug: "a", Status: model.PageStatusDraft, CreatedAt: d1},
			model.BlogPost{ID: "b1", Title: "B", Slug: "b", Excerpt: strPtr("e"), Content: strPtr("c"),
				FeaturedImage: strPtr("/f.png"), MetaTitle: strPtr("mt"), MetaDescription: strPtr("md"),
				Tags: []string{"t"}, Status: model.PageStatusPublished, AuthorID: strPtr("u1"), ViewCount: 9,
				PublishedAt: &d2, CreatedAt: d1},
		)
	})

	t.Run("job listing", func(t *testing.T) {
		checkSingleFieldUpdates[UpdateJobListingRequest](t,
			model.JobListing{ID: "j1", Title: "Clerk", Status: model.JobStatusOpen, CreatedAt: d1},
			model.JobListing{ID: "j1", Title: "Accountant", Department: strPtr("Finance"), Location: strPtr("Makati"),
				EmploymentType: strPtr("full-time"), Description: strPtr("d"), Requirements: []string{"CPA"},
				Benefits: []string{"HMO"}, SalaryRange: strPtr("40k"), Status: model.JobStatusClosed,
				ApplicationsCount: 3, ExpiresAt: &d2, CreatedAt: d1},
		)
	})

	t.Run("testimonial", func(t *testing.T) {
		checkSingleFieldUpdates[UpdateTestimonialRequest](t,
			model.Testimonial{ID: "t1", ClientName: "Ana", Content: "Good", Rating: 5, CreatedAt: d1},
			model.Testimonial{ID: "t1", ClientName: "Ben", ClientTitle: strPtr("CFO"), CompanyName: strPtr("Co"),
				Content: "Great", Rating: 3, AvatarURL: strPtr("/a.png"), IsFeatured: true, SortOrder: 2, CreatedAt: d1},
		)
	})

	t.Run("team member", func(t *testing.T) {
		checkSingleFieldUpdates[UpdateTeamMemberRequest](t,
			model.TeamMember{ID: "m1", Name: "Jose", Role: "Partner", CreatedAt: d1},
			model.TeamMember{ID: "m1", Name: "Maria", Role: "Manager", Title: strPtr("CPA"), Bio: strPtr("b"),
				AvatarURL: strPtr("/a.png"), Email: strPtr("m@jdgkbsi.ph"), Phone: strPtr("123"),
				LinkedinURL: strPtr("https://linkedin.com/in/m"), SortOrder: 4, IsLeadership: true, CreatedAt: d1},
		)
	})
}
