package v1

import (
	"net/http"
	"strconv"

	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(public *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{
		projectUC: projectUC,
	}

	public.POST("/add_project", handler.AddProject)
	public.GET("/projects/:project_id", handler.GetProject)
	public.GET("/projects", handler.GetProjectsByProfile)
}

// AddProject godoc
// @Summary      Add Project
// @Description  Add a project to a profile, linking the listed skills (created by name when missing)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      domain.CreateProjectInput  true  "Project details"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /add_project [post]
func (h *ProjectHandler) AddProject(c *gin.Context) {
	var req domain.CreateProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project, err := h.projectUC.AddProject(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Project added successfully", project)
}

// GetProject godoc
// @Summary      Get Project
// @Description  Fetch a single project by id
// @Tags         projects
// @Produce      json
// @Param        project_id  path      int  true  "Project ID"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid project id"))
		return
	}

	project, err := h.projectUC.GetProject(c.Request.Context(), projectID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project details", project)
}

// GetProjectsByProfile godoc
// @Summary      List Profile Projects
// @Description  List the projects attached to a profile
// @Tags         projects
// @Produce      json
// @Param        profile_id  query     int  true  "Profile ID"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /projects [get]
func (h *ProjectHandler) GetProjectsByProfile(c *gin.Context) {
	profileID, err := strconv.ParseInt(c.Query("profile_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid profile id"))
		return
	}

	projects, err := h.projectUC.GetProjectsByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile projects", projects)
}
