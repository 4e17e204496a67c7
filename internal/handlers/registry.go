package handlers

import (
	"github.com/gin-gonic/gin"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ServiceHandler     *ServiceHandler
	ProjectHandler     *ProjectHandler
	BlogHandler        *BlogHandler
	ContactHandler     *ContactHandler
	TestimonialHandler *TestimonialHandler
	SocialMediaHandler *SocialMediaHandler
	UploadHandler      *UploadHandler
	MediaHandler       *MediaHandler
	HealthHandler      *HealthHandler
}

// RouteRegistrar is implemented by every handler.
type RouteRegistrar interface {
	RegisterRoutes(r *gin.RouterGroup)
}

func (a *AppHandlers) All() []RouteRegistrar {
	return []RouteRegistrar{
		a.HealthHandler,
		a.AuthHandler,
		a.ServiceHandler,
		a.ProjectHandler,
		a.BlogHandler,
		a.ContactHandler,
		a.TestimonialHandler,
		a.SocialMediaHandler,
		a.UploadHandler,
		a.MediaHandler,
	}
}
