// Package dmss is a typed client for the third-party camera-management
// server. A Client holds at most one authenticated session; construct it once
// at startup and hand it to whatever needs it instead of going through a
// package-level singleton.
package dmss

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const requestTimeout = 10 * time.Second

type Client struct {
	httpClient *http.Client

	mu       sync.Mutex
	state    State
	baseURL  string
	token    string
	username string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		state:      StateDisconnected,
	}
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Client) IsConnected() bool {
	return c.State() == StateConnected
}

// reset drops every piece of session state. Called with c.mu held.
func (c *Client) reset() {
	c.state = StateDisconnected
	c.baseURL = ""
	c.token = ""
	c.username = ""
}

// Connect authenticates with username and password. Any failure transitions
// straight back to disconnected with all session state cleared; there is no
// partial connected state.
func (c *Client) Connect(server, port, username, password string) error {
	c.mu.Lock()
	c.state = StateConnecting
	c.baseURL = baseURL(server, port)
	c.mu.Unlock()

	token, err := login(c.httpClient, baseURL(server, port), username, password)
	if err != nil {
		c.mu.Lock()
		c.reset()
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.state = StateConnected
	c.token = token
	c.username = username
	c.mu.Unlock()
	return nil
}

// ConnectQR authenticates with a scanned QR payload via the QR-login
// endpoint. Failure semantics match Connect.
func (c *Client) ConnectQR(payload string) error {
	qr, err := ParseQRPayload(payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.state = StateConnecting
	c.baseURL = baseURL(qr.Server, qr.Port)
	c.mu.Unlock()

	token, err := qrLogin(c.httpClient, baseURL(qr.Server, qr.Port), qr)
	if err != nil {
		c.mu.Lock()
		c.reset()
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.state = StateConnected
	c.token = token
	c.username = qr.DeviceID
	c.mu.Unlock()
	return nil
}

// Disconnect tells the server to drop the session (best effort) and clears
// all local state either way.
func (c *Client) Disconnect() {
	c.mu.Lock()
	base, token := c.baseURL, c.token
	c.reset()
	c.mu.Unlock()

	if base == "" || token == "" {
		return
	}

	req, err := http.NewRequest(http.MethodPost, base+"/api/v1/auth/logout", nil)
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if resp, err := c.httpClient.Do(req); err == nil {
		resp.Body.Close()
	}
}

// ListCameras returns all cameras known to the server.
func (c *Client) ListCameras() ([]Camera, error) {
	var remote []remoteCamera
	if err := c.get("/api/v1/cameras", &remote); err != nil {
		return nil, err
	}

	cameras := make([]Camera, 0, len(remote))
	for _, rc := range remote {
		status := "offline"
		if rc.Online {
			status = "online"
		}
		cameras = append(cameras, Camera{
			ID:       rc.ID,
			Name:     rc.Name,
			Location: rc.Location,
			Status:   status,
		})
	}
	return cameras, nil
}

func (c *Client) SystemInfo() (*SystemInfo, error) {
	var info SystemInfo
	if err := c.get("/api/v1/system/info", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) StartRecording(cameraID string) error {
	return c.post(fmt.Sprintf("/api/v1/cameras/%s/record/start", url.PathEscape(cameraID)), nil, nil)
}

func (c *Client) StopRecording(cameraID string) error {
	return c.post(fmt.Sprintf("/api/v1/cameras/%s/record/stop", url.PathEscape(cameraID)), nil, nil)
}

func (c *Client) ListRecordings(cameraID string, start, end time.Time) ([]Recording, error) {
	path := fmt.Sprintf("/api/v1/cameras/%s/recordings?start=%s&end=%s",
		url.PathEscape(cameraID),
		url.QueryEscape(start.Format(time.RFC3339)),
		url.QueryEscape(end.Format(time.RFC3339)))

	var recordings []Recording
	if err := c.get(path, &recordings); err != nil {
		return nil, err
	}
	return recordings, nil
}

// StreamURL builds the live stream URL for a camera. The bearer token rides
// in a query parameter because the vendor offers no signed-URL alternative;
// treat the result as a secret.
func (c *Client) StreamURL(cameraID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConnected {
		return "", fmt.Errorf("dmss: not connected")
	}
	return fmt.Sprintf("%s/api/v1/cameras/%s/stream?token=%s",
		c.baseURL, url.PathEscape(cameraID), url.QueryEscape(c.token)), nil
}

// ThumbnailURL builds the snapshot URL for a camera. Same token caveat as
// StreamURL.
func (c *Client) ThumbnailURL(cameraID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConnected {
		return "", fmt.Errorf("dmss: not connected")
	}
	return fmt.Sprintf("%s/api/v1/cameras/%s/thumbnail?token=%s",
		c.baseURL, url.PathEscape(cameraID), url.QueryEscape(c.token)), nil
}

// Health pings the unauthenticated health endpoint of the active server.
func (c *Client) Health() error {
	c.mu.Lock()
	base := c.baseURL
	c.mu.Unlock()
	if base == "" {
		return fmt.Errorf("dmss: not connected")
	}

	resp, err := c.httpClient.Get(base + "/api/v1/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dmss: health check returned %d", resp.StatusCode)
	}
	return nil
}

// TestConnection runs the password handshake against caller-supplied
// credentials without touching any session state. Used for pre-flight
// validation in the setup screen.
func TestConnection(server, port, username, password string) error {
	client := &http.Client{Timeout: requestTimeout}
	_, err := login(client, baseURL(server, port), username, password)
	return err
}

// TestQRConnection is TestConnection for QR payloads.
func TestQRConnection(payload string) error {
	qr, err := ParseQRPayload(payload)
	if err != nil {
		return err
	}
	client := &http.Client{Timeout: requestTimeout}
	_, err = qrLogin(client, baseURL(qr.Server, qr.Port), qr)
	return err
}

// ParseQRPayload decodes a QR credential, accepting either the JSON form or
// the colon-delimited deviceId:server:port:token[:timestamp] form.
func ParseQRPayload(payload string) (*QRPayload, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("dmss: empty QR payload")
	}

	if strings.HasPrefix(payload, "{") {
		var qr QRPayload
		if err := json.Unmarshal([]byte(payload), &qr); err != nil {
			return nil, fmt.Errorf("dmss: invalid QR JSON: %w", err)
		}
		if qr.Server == "" || qr.Token == "" {
			return nil, fmt.Errorf("dmss: QR payload missing server or token")
		}
		return &qr, nil
	}

	parts := strings.Split(payload, ":")
	if len(parts) != 4 && len(parts) != 5 {
		return nil, fmt.Errorf("dmss: invalid QR payload format")
	}

	qr := &QRPayload{
		DeviceID: parts[0],
		Server:   parts[1],
		Port:     parts[2],
		Token:    parts[3],
	}
	if len(parts) == 5 {
		qr.Timestamp = parts[4]
	}
	if qr.Server == "" || qr.Token == "" {
		return nil, fmt.Errorf("dmss: QR payload missing server or token")
	}
	return qr, nil
}

func baseURL(server, port string) string {
	server = strings.TrimSuffix(server, "/")
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		server = "http://" + server
	}
	if port != "" {
		return server + ":" + port
	}
	return server
}

func login(client *http.Client, base, username, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})

	return authRequest(client, base+"/api/v1/auth/login", body)
}

func qrLogin(client *http.Client, base string, qr *QRPayload) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"deviceId":  qr.DeviceID,
		"token":     qr.Token,
		"timestamp": qr.Timestamp,
	})

	return authRequest(client, base+"/api/v1/auth/qr-login", body)
}

func authRequest(client *http.Client, endpoint string, body []byte) (string, error) {
	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("dmss: invalid auth response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("dmss: authentication failed: %s", msg)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		return "", fmt.Errorf("dmss: auth response missing token")
	}
	return data.Token, nil
}

func (c *Client) get(path string, out interface{}) error {
	return c.do(http.MethodGet, path, nil, out)
}

func (c *Client) post(path string, body []byte, out interface{}) error {
	return c.do(http.MethodPost, path, body, out)
}

func (c *Client) do(method, path string, body []byte, out interface{}) error {
	c.mu.Lock()
	base, token, state := c.baseURL, c.token, c.state
	c.mu.Unlock()

	if state != StateConnected {
		return fmt.Errorf("dmss: not connected")
	}

	req, err := http.NewRequest(method, base+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("dmss: invalid response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("dmss: request failed: %s", msg)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("dmss: invalid response data: %w", err)
		}
	}
	return nil
}
