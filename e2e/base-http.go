package e2e

import (
	"basecamp/auth"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
	tokens *auth.JWTAuthenticator
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BaseURL == "" || s.Config.JWTSecret == "" {
		s.T().Skip("E2E_BASE_URL and E2E_JWT_SECRET are required")
	}
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.tokens = auth.NewJWTAuthenticator(s.Config.JWTSecret, s.Config.JWTIssuer, time.Hour)
}

// User is a caller identified by a freshly issued token.
type User struct {
	ID    uuid.UUID
	Token string
}

func (s *BaseHTTPSuite) NewUser() User {
	id := uuid.New()
	token, err := s.tokens.IssueToken(id)
	s.Require().NoError(err)
	return User{ID: id, Token: token}
}

// Call sends one JSON request and decodes the response into out when it is not nil.
// It returns the status code so scenarios can assert on failures.
func (s *BaseHTTPSuite) Call(step string, user User, method, path string, body, out any) int {
	header := fmt.Sprintf("  ====== %s ======", step)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		payload = bytes.NewReader(raw)
	}
	r, err := http.NewRequest(method, strings.TrimRight(s.Config.BaseURL, "/")+path, payload)
	s.Require().NoError(err)
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+user.Token)

	start := time.Now()
	resp, err := s.client.Do(r)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		fmt.Fprintf(&logBuilder, "\nRESPONSE:\n%s", raw)
	}
	s.T().Log(logBuilder.String())

	if out != nil && resp.StatusCode < 300 && len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, out))
	}
	return resp.StatusCode
}
