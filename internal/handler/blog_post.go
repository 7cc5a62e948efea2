// File: internal/handler/blog_post.go
package handler

import (
	"jdgk-cms/internal/api"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

func blogPostFilter(c echo.Context) (store.BlogPostFilter, error) {
	return store.BlogPostFilter{
		Status:   queryValue[model.PageStatus](c, "status"),
		AuthorID: queryValue[string](c, "author_id"),
		Slug:     queryValue[string](c, "slug"),
	}, nil
}

// @Summary     List blog posts
// @Tags        blog_posts
// @Produce     json
// @Param       status    query string false "draft | published | archived"
// @Param       author_id query string false "作者 ID"
// @Param       slug      query string false "文章 slug"
// @Param       skip      query int    false "略過筆數" default(0)
// @Param       limit     query int    false "回傳筆數上限" default(100)
// @Success     200 {array}  model.BlogPost
// @Failure     400 {object} api.HTTPError
// @Router      /blog_posts [get]
func ListBlogPostsHandler(db database.DB) echo.HandlerFunc {
	return listHandler(db, blogPostFilter, store.ListBlogPosts)
}

// @Summary     Get a blog post by ID
// @Tags        blog_posts
// @Produce     json
// @Param       id  path     string true "文章 ID"
// @Success     200 {object} model.BlogPost
// @Failure     404 {object} api.HTTPError
// @Router      /blog_posts/{id} [get]
func GetBlogPostHandler(db database.DB) echo.HandlerFunc {
	return getHandler(db, "blog post", "id", store.GetBlogPostByID)
}

// @Summary     Get a blog post by slug
// @Tags        blog_posts
// @Produce     json
// @Param       slug path     string true "文章 slug"
// @Success     200  {object} model.BlogPost
// @Failure     404  {object} api.HTTPError
// @Router      /blog_posts/slug/{slug} [get]
func GetBlogPostBySlugHandler(db database.DB) echo.HandlerFunc {
	return getHandler(db, "blog post", "slug", store.GetBlogPostBySlug)
}

// CreateBlogPostHandler author_id 不檢查是否存在
// @Summary     Create a blog post
// @Tags        blog_posts
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateBlogPostRequest true "文章內容"
// @Success     201  {object} model.BlogPost
// @Failure     400  {object} api.HTTPError
// @Failure     409  {object} api.HTTPError
// @Router      /blog_posts [post]
func CreateBlogPostHandler(db database.DB) echo.HandlerFunc {
	return createHandler(db, api.CreateBlogPostRequest.Model, store.CreateBlogPost)
}

// @Summary     Update a blog post
// @Tags        blog_posts
// @Accept      json
// @Produce     json
// @Param       id   path     string                    true "文章 ID"
// @Param       body body     api.UpdateBlogPostRequest true "要更新的欄位"
// @Success     200  {object} model.BlogPost
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Failure     409  {object} api.HTTPError
// @Router      /blog_posts/{id} [put]
// @Router      /blog_posts/{id} [patch]
func UpdateBlogPostHandler(db database.DB) echo.HandlerFunc {
	return updateHandler(db, "blog post", api.UpdateBlogPostRequest.ApplyTo, store.UpdateBlogPost)
}

// @Summary     Delete a blog post
// @Tags        blog_posts
// @Produce     json
// @Param       id  path     string true "文章 ID"
// @Success     200 {object} model.BlogPost
// @Failure     404 {object} api.HTTPError
// @Router      /blog_posts/{id} [delete]
func DeleteBlogPostHandler(db database.DB) echo.HandlerFunc {
	return deleteHandler(db, "blog post", store.DeleteBlogPost)
}
