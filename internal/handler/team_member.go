// File: internal/handler/team_member.go
package handler

import (
	"jdgk-cms/internal/api"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

func teamMemberFilter(c echo.Context) (store.TeamMemberFilter, error) {
	leadership, err := queryBool(c, "is_leadership")
	if err != nil {
		return store.TeamMemberFilter{}, err
	}
	return store.TeamMemberFilter{IsLeadership: leadership}, nil
}

// @Summary     List team members
// @Tags        team_members
// @Produce     json
// @Param       is_leadership query bool false "是否為管理層"
// @Param       skip          query int  false "略過筆數" default(0)
// @Param       limit         query int  false "回傳筆數上限" default(100)
// @Success     200 {array}  model.TeamMember
// @Failure     400 {object} api.HTTPError
// @Router      /team_members [get]
func ListTeamMembersHandler(db database.DB) echo.HandlerFunc {
	return listHandler(db, teamMemberFilter, store.ListTeamMembers)
}

// @Summary     Get a team member by ID
// @Tags        team_members
// @Produce     json
// @Param       id  path     string true "成員 ID"
// @Success     200 {object} model.TeamMember
// @Failure     404 {object} api.HTTPError
// @Router      /team_members/{id} [get]
func GetTeamMemberHandler(db database.DB) echo.HandlerFunc {
	return getHandler(db, "team member", "id", store.GetTeamMemberByID)
}

// @Summary     Create a team member
// @Tags        team_members
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateTeamMemberRequest true "成員資料"
// @Success     201  {object} model.TeamMember
// @Failure     400  {object} api.HTTPError
// @Router      /team_members [post]
func CreateTeamMemberHandler(db database.DB) echo.HandlerFunc {
	return createHandler(db, api.CreateTeamMemberRequest.Model, store.CreateTeamMember)
}

// @Summary     Update a team member
// @Tags        team_members
// @Accept      json
// @Produce     json
// @Param       id   path     string                      true "成員 ID"
// @Param       body body     api.UpdateTeamMemberRequest true "要更新的欄位"
// @Success     200  {object} model.TeamMember
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Router      /team_members/{id} [put]
// @Router      /team_members/{id} [patch]
func UpdateTeamMemberHandler(db database.DB) echo.HandlerFunc {
	return updateHandler(db, "team member", api.UpdateTeamMemberRequest.ApplyTo, store.UpdateTeamMember)
}

// @Summary     Delete a team member
// @Tags        team_members
// @Produce     json
// @Param       id  path     string true "成員 ID"
// @Success     200 {object} model.TeamMember
// @Failure     404 {object} api.HTTPError
// @Router      /team_members/{id} [delete]
func DeleteTeamMemberHandler(db database.DB) echo.HandlerFunc {
	return deleteHandler(db, "team member", store.DeleteTeamMember)
}
