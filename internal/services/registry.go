package services

import (
	"sitecms_backend/internal/auth"
	"sitecms_backend/internal/email"
	"sitecms_backend/internal/metrics"
	"sitecms_backend/internal/repositories"
	"sitecms_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService        AuthService
	CatalogService     *CatalogService
	ProjectService     *ProjectService
	BlogService        *BlogService
	ContactService     *ContactService
	TestimonialService *TestimonialService
	SocialMediaService *SocialMediaService
	UploadService      UploadService
}

// Dependencies are the collaborators the services are built from.
type Dependencies struct {
	Storage     storage.Storage
	Optimizer   Optimizer
	Mailer      email.Provider
	Metrics     *metrics.Metrics
	Credentials *auth.AdminCredentials
	Tokens      *auth.TokenManager
	Upload      *UploadConfig
}

func NewServiceContainer(deps Dependencies) *ServiceContainer {
	return &ServiceContainer{
		AuthService:        NewAuthService(deps.Credentials, deps.Tokens),
		CatalogService:     NewCatalogService(repositories.NewServiceRepository()),
		ProjectService:     NewProjectService(repositories.NewProjectRepository()),
		BlogService:        NewBlogService(repositories.NewBlogRepository()),
		ContactService:     NewContactService(repositories.NewContactRepository(), deps.Mailer),
		TestimonialService: NewTestimonialService(repositories.NewTestimonialRepository()),
		SocialMediaService: NewSocialMediaService(repositories.NewSocialMediaRepository()),
		UploadService:      NewUploadService(deps.Storage, deps.Optimizer, deps.Metrics, deps.Upload),
	}
}
