package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mediumkit/medium-go/internal/config"
	"github.com/mediumkit/medium-go/internal/tokenstore"
	"github.com/mediumkit/medium-go/medium"
)

var apiURL string
var debug bool

const requestTimeout = 15 * time.Second

// imageContentTypes maps the accepted image file extensions to their MIME
// types.
var imageContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "medium",
		Short:         "Publish to Medium from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			// Set log level based on debug flag
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("MEDIUM_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the Medium API (default from MEDIUM_API_URL, else https://api.medium.com)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newCreatePostCmd())
	rootCmd.AddCommand(newUploadImageCmd())

	return rootCmd
}

// --------------------------------------------------------------------
// config: stored token management
// --------------------------------------------------------------------

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stored Medium credentials",
	}

	setToken := &cobra.Command{
		Use:   "set-token <token>",
		Short: "Store a self-issued access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if err := st.SaveToken(tokenstore.Token{AccessToken: args[0]}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token set successfully")
			return nil
		},
	}

	getToken := &cobra.Command{
		Use:   "get-token",
		Short: "Print the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			t, err := st.Token()
			if errors.Is(err, tokenstore.ErrNoToken) {
				return fmt.Errorf("token not set; run `medium config set-token`")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token: %s\n", t.AccessToken)
			return nil
		},
	}

	rmToken := &cobra.Command{
		Use:   "rm-token",
		Short: "Remove the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if err := st.DeleteToken(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token removed successfully")
			return nil
		},
	}

	cmd.AddCommand(setToken, getToken, rmToken)
	return cmd
}

// --------------------------------------------------------------------
// login: OAuth authorization flow
// --------------------------------------------------------------------

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authorize the application with Medium",
	}
	cmd.AddCommand(newLoginURLCmd(), newLoginExchangeCmd(), newLoginRefreshCmd())
	return cmd
}

func newLoginURLCmd() *cobra.Command {
	var redirectURL, state string
	var scopes []string

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the authorization URL to send a user to",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if state == "" {
				state = uuid.NewString()
			}

			u := c.AuthorizationURL(state, redirectURL, scopes)
			log.Debug().Str("state", state).Str("redirect_url", redirectURL).Msg("authorization URL built")
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}

	cmd.Flags().StringVar(&redirectURL, "redirect-url", "", "URL the provider redirects to after consent (required)")
	cmd.Flags().StringVar(&state, "state", "", "Opaque state passed back to the redirect URL (default: random UUID)")
	cmd.Flags().StringSliceVar(&scopes, "scope", []string{medium.ScopeBasicProfile, medium.ScopePublishPost, medium.ScopeUploadImage}, "Scopes to request")
	_ = cmd.MarkFlagRequired("redirect-url")

	return cmd
}

func newLoginExchangeCmd() *cobra.Command {
	var code, redirectURL string

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Exchange an authorization code for tokens and store them",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			tok, err := c.ExchangeAuthorizationCode(ctx, code, redirectURL)
			if err != nil {
				return err
			}
			if err := saveToken(tok); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Authorized successfully; access token stored")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Authorization code from the redirect (required)")
	cmd.Flags().StringVar(&redirectURL, "redirect-url", "", "The redirect URL used during authorization (required)")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("redirect-url")

	return cmd
}

func newLoginRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the stored refresh token for a new access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			stored, err := st.Token()
			if errors.Is(err, tokenstore.ErrNoToken) || (err == nil && stored.RefreshToken == "") {
				return fmt.Errorf("no refresh token stored; run `medium login exchange` first")
			}
			if err != nil {
				return err
			}

			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			tok, err := c.ExchangeRefreshToken(ctx, stored.RefreshToken)
			if err != nil {
				return err
			}
			if err := st.SaveToken(tokenstore.Token{AccessToken: tok.AccessToken, RefreshToken: tok.RefreshToken}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Access token refreshed")
			return nil
		},
	}
}

// --------------------------------------------------------------------
// whoami
// --------------------------------------------------------------------

func newWhoamiCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAuthenticatedClient(token)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			u, err := c.CurrentUser(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Authenticated as %s (@%s)\n", u.Name, u.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&token, "token", "T", "", "Pass the self-issued access token directly")
	return cmd
}

// --------------------------------------------------------------------
// create-post
// --------------------------------------------------------------------

func newCreatePostCmd() *cobra.Command {
	var contentFormat, canonicalURL, tags, publishStatus, license, token string

	cmd := &cobra.Command{
		Use:   "create-post <title> <content>",
		Short: "Create a post from a file or raw content",
		Long: "Create a post on Medium. <content> is either a path to an .html or .md file,\n" +
			"or the raw post body (in which case --content-format is required).",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			content, format, err := resolveContent(args[1], contentFormat)
			if err != nil {
				return err
			}

			var tagList []string
			if tags != "" {
				tagList = strings.Split(tags, ",")
			}

			c, err := newAuthenticatedClient(token)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			// The posts route is keyed by user ID, so resolve the
			// authenticated user first.
			u, err := c.CurrentUser(ctx)
			if err != nil {
				return err
			}

			log.Debug().
				Str("user_id", u.ID).
				Str("title", title).
				Str("content_format", string(format)).
				Str("publish_status", publishStatus).
				Msg("creating post")

			p, err := c.CreatePost(ctx, u.ID, medium.CreatePostRequest{
				Title:         title,
				Content:       content,
				ContentFormat: format,
				Tags:          tagList,
				CanonicalURL:  canonicalURL,
				PublishStatus: medium.PublishStatus(publishStatus),
				License:       medium.License(license),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Post created successfully: %s\n", p.URL)
			return nil
		},
	}

	cmd.Flags().StringVarP(&contentFormat, "content-format", "f", "", "Format of the content: html or markdown (inferred from the file extension when omitted)")
	cmd.Flags().StringVarP(&canonicalURL, "canonical-url", "c", "", "Canonical URL of the post")
	cmd.Flags().StringVarP(&tags, "tags", "t", "", "Comma-separated list of tags (max 3)")
	cmd.Flags().StringVarP(&publishStatus, "publish-status", "p", string(medium.PublishPublic), "Publish status: public, unlisted, or draft")
	cmd.Flags().StringVarP(&license, "license", "l", string(medium.LicenseAllRightsReserved), "License to publish under")
	cmd.Flags().StringVarP(&token, "token", "T", "", "Pass the self-issued access token directly")

	return cmd
}

// resolveContent reads the post body from contentArg when it names an
// existing file, inferring the format from the extension unless one was
// given. Raw content requires an explicit format.
func resolveContent(contentArg, explicitFormat string) (string, medium.ContentFormat, error) {
	format := explicitFormat
	content := contentArg

	if info, err := os.Stat(contentArg); err == nil && !info.IsDir() {
		raw, err := os.ReadFile(contentArg)
		if err != nil {
			return "", "", fmt.Errorf("read content file: %w", err)
		}
		content = string(raw)
		if format == "" {
			switch strings.ToLower(filepath.Ext(contentArg)) {
			case ".html":
				format = string(medium.FormatHTML)
			case ".md":
				format = string(medium.FormatMarkdown)
			}
		}
	} else if format == "" {
		return "", "", fmt.Errorf("raw content requires --content-format (html or markdown)")
	}

	switch medium.ContentFormat(format) {
	case medium.FormatHTML, medium.FormatMarkdown:
		return content, medium.ContentFormat(format), nil
	}
	return "", "", fmt.Errorf("invalid content format %q: options are html, markdown", format)
}

// --------------------------------------------------------------------
// upload-image
// --------------------------------------------------------------------

func newUploadImageCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "upload-image <path>",
		Short: "Upload a local image for use in a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("image not found at %s", path)
			}
			contentType, ok := imageContentTypes[strings.ToLower(filepath.Ext(path))]
			if !ok {
				return fmt.Errorf("invalid image format; supported formats are: png, jpg, jpeg, gif, tif, tiff")
			}

			c, err := newAuthenticatedClient(token)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			img, err := c.UploadImage(ctx, medium.UploadImageRequest{
				FilePath:    path,
				ContentType: contentType,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Image uploaded successfully: %s\n", img.URL)
			return nil
		},
	}

	cmd.Flags().StringVarP(&token, "token", "T", "", "Pass the self-issued access token directly")
	return cmd
}

// --------------------------------------------------------------------
// helpers
// --------------------------------------------------------------------

// newClient builds an SDK client from the environment configuration; the
// --api-url flag overrides the configured base URL.
func newClient() (*medium.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	base := cfg.APIURL
	if apiURL != "" {
		base = apiURL
	}
	return medium.New(cfg.ApplicationID, cfg.ApplicationSecret, medium.WithBaseURL(base))
}

// newAuthenticatedClient builds a client carrying an access token, resolved
// in order: the --token flag, MEDIUM_ACCESS_TOKEN, the token store.
func newAuthenticatedClient(flagToken string) (*medium.Client, error) {
	c, err := newClient()
	if err != nil {
		return nil, err
	}
	tok, err := resolveToken(flagToken)
	if err != nil {
		return nil, err
	}
	return c.WithAccessToken(tok), nil
}

func resolveToken(flagToken string) (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.AccessToken != "" {
		return cfg.AccessToken, nil
	}

	st, err := openStore()
	if err != nil {
		return "", err
	}
	defer func() { _ = st.Close() }()

	t, err := st.Token()
	if errors.Is(err, tokenstore.ErrNoToken) {
		return "", fmt.Errorf("access token not set; run `medium config set-token` or `medium login`")
	}
	if err != nil {
		return "", err
	}
	return t.AccessToken, nil
}

// saveToken persists an exchanged token pair in the credentials store.
func saveToken(tok *medium.Token) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	return st.SaveToken(tokenstore.Token{AccessToken: tok.AccessToken, RefreshToken: tok.RefreshToken})
}

func openStore() (*tokenstore.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	path := cfg.CredentialsPath
	if path == "" {
		path, err = tokenstore.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return tokenstore.Open(path)
}
