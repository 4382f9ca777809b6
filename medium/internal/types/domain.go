package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// ContentFormat is the markup format of post content.
type ContentFormat string

const (
	FormatHTML     ContentFormat = "html"
	FormatMarkdown ContentFormat = "markdown"
)

// PublishStatus is the visibility of a created post. The server defaults to
// Public when the field is omitted.
type PublishStatus string

const (
	PublishPublic   PublishStatus = "public"
	PublishUnlisted PublishStatus = "unlisted"
	PublishDraft    PublishStatus = "draft"
)

// License is the license a post is published under. The server defaults to
// all-rights-reserved when the field is omitted.
type License string

const (
	LicenseAllRightsReserved License = "all-rights-reserved"
	LicenseCC40By            License = "cc-40-by"
	LicenseCC40BySA          License = "cc-40-by-sa"
	LicenseCC40ByND          License = "cc-40-by-nd"
	LicenseCC40ByNC          License = "cc-40-by-nc"
	LicenseCC40ByNCND        License = "cc-40-by-nc-nd"
	LicenseCC40ByNCSA        License = "cc-40-by-nc-sa"
	LicenseCC40Zero          License = "cc-40-zero"
	LicensePublicDomain      License = "public-domain"
)

// Token is the result of a token exchange. The client never stores it; the
// caller decides where (if anywhere) it is persisted.
type Token struct {
	TokenType    string   `json:"token_type"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	Scope        []string `json:"scope"`
	ExpiresAt    int64    `json:"expires_at"` // epoch milliseconds
}

// User is the profile of an authenticated Medium user.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
}

// Post is a created post as echoed back by the API, including the
// server-assigned identifiers.
type Post struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	AuthorID      string        `json:"authorId"`
	Tags          []string      `json:"tags"`
	URL           string        `json:"url"`
	CanonicalURL  string        `json:"canonicalUrl"`
	PublishStatus PublishStatus `json:"publishStatus"`
	License       License       `json:"license"`
	LicenseURL    string        `json:"licenseUrl"`
}

// Image is the result of an image upload.
type Image struct {
	URL string `json:"url"`
	MD5 string `json:"md5"`
}
