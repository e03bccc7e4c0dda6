package v1

import (
	"net/http"
	"strconv"

	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{
		skillUC: skillUC,
	}

	public.GET("/skills", handler.ListSkills)
	public.GET("/profile_skills/:profile_id", handler.GetProfileSkills)
}

// ListSkills godoc
// @Summary      List Skills
// @Description  List all known skills, ordered by name
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /skills [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills", skills)
}

// GetProfileSkills godoc
// @Summary      List Profile Skills
// @Description  List the skills linked to a profile
// @Tags         skills
// @Produce      json
// @Param        profile_id  path      int  true  "Profile ID"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /profile_skills/{profile_id} [get]
func (h *SkillHandler) GetProfileSkills(c *gin.Context) {
	profileID, err := strconv.ParseInt(c.Param("profile_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid profile id"))
		return
	}

	skills, err := h.skillUC.GetProfileSkills(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile skills", skills)
}
