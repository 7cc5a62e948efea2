package api

import (
	"encoding/json"
	"testing"

	"jdgk-cms/internal/model"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestOptional_UnmarshalPresence(t *testing.T) {
	var req UpdatePageRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New","meta_title":null}`), &req))

	require.True(t, req.Title.Set)
	require.False(t, req.Title.Null)
	require.Equal(t, "New", req.Title.Value)

	require.True(t, req.MetaTitle.Set)
	require.True(t, req.MetaTitle.Null)
	require.Nil(t, req.MetaTitle.Value)

	require.False(t, req.Slug.Set)
	require.False(t, req.Content.Set)
}

func TestOptional_Nullable(t *testing.T) {
	require.True(t, Optional[*string]{}.Nullable())
	require.True(t, Optional[[]string]{}.Nullable())
	require.True(t, Optional[map[string]any]{}.Nullable())
	require.False(t, Optional[string]{}.Nullable())
	require.False(t, Optional[int]{}.Nullable())
}

func TestOptional_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Some("x"))
	require.NoError(t, err)
	require.JSONEq(t, `"x"`, string(b))

	b, err = json.Marshal(Optional[string]{})
	require.NoError(t, err)
	require.JSONEq(t, `null`, string(b))
}

func existingPage() model.Page {
	return model.Page{
		ID:              "p1",
		Title:           "Home",
		Slug:            "home",
		Content:         map[string]any{"hero": map[string]any{"title": "Welcome"}},
		MetaTitle:       strPtr("Home | JDGK"),
		MetaDescription: strPtr("desc"),
		Status:          model.PageStatusPublished,
		PageType:        model.PageTypeSystem,
	}
}

func TestUpdatePageRequest_EmptyChangesNothing(t *testing.T) {
	var req UpdatePageRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

	p := existingPage()
	req.ApplyTo(&p)
	require.Equal(t, existingPage(), p)
}

func TestUpdatePageRequest_OnlyTitle(t *testing.T) {
	var req UpdatePageRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Start"}`), &req))

	p := existingPage()
	req.ApplyTo(&p)

	want := existingPage()
	want.Title = "Start"
	require.Equal(t, want, p)
}

func TestUpdatePageRequest_NullClearsNullable(t *testing.T) {
	var req UpdatePageRequest
	require.NoError(t, json.Unmarshal([]byte(`{"meta_title":null,"content":null}`), &req))

	p := existingPage()
	req.ApplyTo(&p)
	require.Nil(t, p.MetaTitle)
	require.Nil(t, p.Content)
	require.Equal(t, "desc", *p.MetaDescription)
}

func TestUpdateServiceRequest_ReplacesFeatures(t *testing.T) {
	var req UpdateServiceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"features":["a"],"is_featured":true}`), &req))

	s := model.Service{Title: "T", Slug: "t", Category: "bpo", Features: []string{"x", "y"}, SortOrder: 3}
	req.ApplyTo(&s)
	require.Equal(t, []string{"a"}, s.Features)
	require.True(t, s.IsFeatured)
	require.Equal(t, 3, s.SortOrder)
	require.Equal(t, "bpo", s.Category)
}

func TestUpdateUserRequest_NormalizesEmail(t *testing.T) {
	var req UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":" Bob@Example.COM "}`), &req))

	u := model.User{ID: "u1", Email: "old@example.com", HashedPassword: "h", Role: model.RoleAdmin}
	req.ApplyTo(&u)
	require.Equal(t, "bob@example.com", u.Email)
	require.Equal(t, "h", u.HashedPassword)
	require.Equal(t, model.RoleAdmin, u.Role)
}

func TestCreateRequests_Defaults(t *testing.T) {
	p := CreatePageRequest{Title: "A", Slug: "a"}.Model()
	require.Equal(t, model.PageStatusDraft, p.Status)
	require.Equal(t, model.PageTypeCustom, p.PageType)

	b := CreateBlogPostRequest{Title: "A", Slug: "a"}.Model()
	require.Equal(t, model.PageStatusDraft, b.Status)
	require.Zero(t, b.ViewCount)

	j := CreateJobListingRequest{Title: "A"}.Model()
	require.Equal(t, model.JobStatusOpen, j.Status)

	tm := CreateTestimonialRequest{ClientName: "A", Content: "c"}.Model()
	require.Equal(t, 5, tm.Rating)
	require.False(t, tm.IsFeatured)

	u := CreateUserRequest{Email: "A@B.com", Password: "x"}.Model()
	require.Equal(t, model.RoleUser, u.Role)
	require.Equal(t, "a@b.com", u.Email)

	published := model.PageStatusPublished
	p = CreatePageRequest{Title: "A", Slug: "a", Status: &published}.Model()
	require.Equal(t, model.PageStatusPublished, p.Status)
}

func TestNewUserResponse_HidesHash(t *testing.T) {
	u := &model.User{ID: "u1", Email: "a@b.com", HashedPassword: "secret-hash", Role: model.RoleUser}
	b, err := json.Marshal(NewUserResponse(u))
	require.NoError(t, err)
	require.NotContains(t, string(b), "secret-hash")
	require.NotContains(t, string(b), "hashed_password")
}
