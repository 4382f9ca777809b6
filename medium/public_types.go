package medium

import "github.com/mediumkit/medium-go/medium/internal/types"

// Public type aliases so SDK consumers can import only the medium package.
type (
	// Requests
	CreatePostRequest  = types.CreatePostRequest
	UploadImageRequest = types.UploadImageRequest

	// Domain entities
	Token = types.Token
	User  = types.User
	Post  = types.Post
	Image = types.Image

	// Enumerations
	ContentFormat = types.ContentFormat
	PublishStatus = types.PublishStatus
	License       = types.License
)

const (
	FormatHTML     = types.FormatHTML
	FormatMarkdown = types.FormatMarkdown

	PublishPublic   = types.PublishPublic
	PublishUnlisted = types.PublishUnlisted
	PublishDraft    = types.PublishDraft

	LicenseAllRightsReserved = types.LicenseAllRightsReserved
	LicenseCC40By            = types.LicenseCC40By
	LicenseCC40BySA          = types.LicenseCC40BySA
	LicenseCC40ByND          = types.LicenseCC40ByND
	LicenseCC40ByNC          = types.LicenseCC40ByNC
	LicenseCC40ByNCND        = types.LicenseCC40ByNCND
	LicenseCC40ByNCSA        = types.LicenseCC40ByNCSA
	LicenseCC40Zero          = types.LicenseCC40Zero
	LicensePublicDomain      = types.LicensePublicDomain
)

// Errors re-exported in errors.go
