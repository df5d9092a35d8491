package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

var identifierSeq atomic.Int64

// phonePrefix derives six digits from TestPrefix so parallel runs do not collide
func (s *TestSuite) phonePrefix() string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s.TestPrefix))
	return fmt.Sprintf("%06d", h.Sum32()%1000000)
}

func (s *TestSuite) newEmail() string {
	return fmt.Sprintf("%s_%d@example.com", s.TestPrefix, identifierSeq.Add(1))
}

func (s *TestSuite) newPhone() string {
	return fmt.Sprintf("+1%s%04d", s.phonePrefix(), identifierSeq.Add(1))
}

// do sends a JSON request and decodes the JSON response
func (s *TestSuite) do(t *testing.T, method, path, bearer string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.Server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := s.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

type session struct {
	UserID       string
	AccessToken  string
	RefreshToken string
}

// login runs request-otp and verify-otp using the exposed dev code
func (s *TestSuite) login(t *testing.T, channel, identifier string) session {
	t.Helper()
	status, body := s.do(t, http.MethodPost, "/api/v1/auth/request-otp", "", map[string]string{"channel": channel, "identifier": identifier})
	require.Equal(t, http.StatusOK, status, body)
	code := body["data"].(map[string]interface{})["devOtp"].(string)

	status, body = s.do(t, http.MethodPost, "/api/v1/auth/verify-otp", "", map[string]string{"identifier": identifier, "code": code})
	require.Equal(t, http.StatusOK, status, body)
	data := body["data"].(map[string]interface{})
	return session{
		UserID:       data["user"].(map[string]interface{})["id"].(string),
		AccessToken:  data["accessToken"].(string),
		RefreshToken: data["refreshToken"].(string),
	}
}
