package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the account routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
}

// ProfileHandlerInterface defines the methods needed by the profile routes.
type ProfileHandlerInterface interface {
	GetProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
	UploadResume(c *gin.Context)
	AddEducation(c *gin.Context)
	DeleteEducation(c *gin.Context)
	AddExperience(c *gin.Context)
	DeleteExperience(c *gin.Context)
	AddCourse(c *gin.Context)
	DeleteCourse(c *gin.Context)
}

// CareersHandlerInterface defines the methods needed by the careers routes.
type CareersHandlerInterface interface {
	ListOpenJobs(c *gin.Context)
	Apply(c *gin.Context)
	ListMyApplications(c *gin.Context)
}

// OnboardingHandlerInterface defines the methods needed by the onboarding routes.
type OnboardingHandlerInterface interface {
	ListDocuments(c *gin.Context)
	SubmitDocument(c *gin.Context)
}

// HRHandlerInterface defines the methods needed by the admin routes.
type HRHandlerInterface interface {
	ListJobs(c *gin.Context)
	CreateJob(c *gin.Context)
	SetJobActive(c *gin.Context)
	ListDocumentTypes(c *gin.Context)
	CreateDocumentType(c *gin.Context)
	ListCandidates(c *gin.Context)
	GetCandidate(c *gin.Context)
	UpdateCandidate(c *gin.Context)
	RequestDocument(c *gin.Context)
	ReviewDocument(c *gin.Context)
	CandidateDossier(c *gin.Context)
	DownloadResume(c *gin.Context)
	DownloadDocument(c *gin.Context)
}

// SiteHandlerInterface defines the methods needed by the site routes.
type SiteHandlerInterface interface {
	Home(c *gin.Context)
	ListServices(c *gin.Context)
	GetService(c *gin.Context)
	About(c *gin.Context)
	ListNews(c *gin.Context)
	GetNews(c *gin.Context)
	ContactPage(c *gin.Context)
	SubmitContactMessage(c *gin.Context)
	UpdateSettings(c *gin.Context)
	CreateVideo(c *gin.Context)
	ActivateVideo(c *gin.Context)
	ListContactMessages(c *gin.Context)
	MarkContactMessageRead(c *gin.Context)
}

// Ensure handlers implements the interface (compile-time check)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ ProfileHandlerInterface = (*ProfileHandler)(nil)
var _ CareersHandlerInterface = (*CareersHandler)(nil)
var _ OnboardingHandlerInterface = (*OnboardingHandler)(nil)
var _ HRHandlerInterface = (*HRHandler)(nil)
var _ SiteHandlerInterface = (*SiteHandler)(nil)
