package dmss

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fakeServer mimics the vendor's API surface closely enough to exercise the
// client's state machine.
func fakeServer(t *testing.T, password string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Password != password {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "invalid credentials",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"token": "test-token"},
		})
	})

	mux.HandleFunc("/api/v1/cameras", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "unauthorized"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": "cam-1", "name": "Front Door", "location": "entry", "online": true},
				{"id": "cam-2", "name": "Kitchen", "location": "back", "online": false},
			},
		})
	})

	mux.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return httptest.NewServer(mux)
}

func TestConnectSuccess(t *testing.T) {
	ts := fakeServer(t, "secret")
	defer ts.Close()

	c := NewClient()
	if err := c.Connect(ts.URL, "", "admin", "secret"); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	if c.State() != StateConnected {
		t.Errorf("state = %s, want connected", c.State())
	}
	if !c.IsConnected() {
		t.Error("IsConnected() = false after successful connect")
	}
}

func TestConnectFailureResetsState(t *testing.T) {
	ts := fakeServer(t, "secret")
	defer ts.Close()

	c := NewClient()
	err := c.Connect(ts.URL, "", "admin", "wrong-password")
	if err == nil {
		t.Fatal("Connect succeeded with wrong password")
	}

	// Failed auth must leave no partial session behind
	if c.State() != StateDisconnected {
		t.Errorf("state = %s, want disconnected", c.State())
	}
	if _, err := c.StreamURL("cam-1"); err == nil {
		t.Error("StreamURL succeeded after failed connect")
	}
	if _, err := c.ListCameras(); err == nil {
		t.Error("ListCameras succeeded after failed connect")
	}
}

func TestListCamerasMapsStatus(t *testing.T) {
	ts := fakeServer(t, "secret")
	defer ts.Close()

	c := NewClient()
	if err := c.Connect(ts.URL, "", "admin", "secret"); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	cameras, err := c.ListCameras()
	if err != nil {
		t.Fatalf("ListCameras failed: %v", err)
	}

	if len(cameras) != 2 {
		t.Fatalf("cameras = %d, want 2", len(cameras))
	}
	if cameras[0].Status != "online" {
		t.Errorf("cam-1 status = %s, want online", cameras[0].Status)
	}
	if cameras[1].Status != "offline" {
		t.Errorf("cam-2 status = %s, want offline", cameras[1].Status)
	}
}

func TestStreamURLCarriesToken(t *testing.T) {
	ts := fakeServer(t, "secret")
	defer ts.Close()

	c := NewClient()
	if err := c.Connect(ts.URL, "", "admin", "secret"); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	streamURL, err := c.StreamURL("cam-1")
	if err != nil {
		t.Fatalf("StreamURL failed: %v", err)
	}
	if !strings.Contains(streamURL, "token=test-token") {
		t.Errorf("stream URL missing token: %s", streamURL)
	}
	if !strings.Contains(streamURL, "/cameras/cam-1/stream") {
		t.Errorf("stream URL missing camera path: %s", streamURL)
	}
}

func TestDisconnectClearsSession(t *testing.T) {
	ts := fakeServer(t, "secret")
	defer ts.Close()

	c := NewClient()
	if err := c.Connect(ts.URL, "", "admin", "secret"); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	c.Disconnect()

	if c.State() != StateDisconnected {
		t.Errorf("state = %s, want disconnected", c.State())
	}
	if _, err := c.ListCameras(); err == nil {
		t.Error("ListCameras succeeded after disconnect")
	}
}

func TestTestConnectionIsStateless(t *testing.T) {
	ts := fakeServer(t, "secret")
	defer ts.Close()

	if err := TestConnection(ts.URL, "", "admin", "secret"); err != nil {
		t.Errorf("TestConnection failed: %v", err)
	}
	if err := TestConnection(ts.URL, "", "admin", "wrong"); err == nil {
		t.Error("TestConnection passed with wrong password")
	}
}

func TestParseQRPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    *QRPayload
		wantErr bool
	}{
		{
			name:    "json form",
			payload: `{"deviceId":"dev1","server":"cam.local","port":"8080","token":"tok"}`,
			want:    &QRPayload{DeviceID: "dev1", Server: "cam.local", Port: "8080", Token: "tok"},
		},
		{
			name:    "colon form without timestamp",
			payload: "dev1:cam.local:8080:tok",
			want:    &QRPayload{DeviceID: "dev1", Server: "cam.local", Port: "8080", Token: "tok"},
		},
		{
			name:    "colon form with timestamp",
			payload: "dev1:cam.local:8080:tok:1700000000",
			want:    &QRPayload{DeviceID: "dev1", Server: "cam.local", Port: "8080", Token: "tok", Timestamp: "1700000000"},
		},
		{name: "empty", payload: "", wantErr: true},
		{name: "too few parts", payload: "dev1:cam.local", wantErr: true},
		{name: "too many parts", payload: "a:b:c:d:e:f", wantErr: true},
		{name: "json missing token", payload: `{"server":"cam.local"}`, wantErr: true},
		{name: "colon form missing server", payload: "dev1::8080:tok", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQRPayload(tt.payload)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseQRPayload(%q) succeeded, want error", tt.payload)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQRPayload(%q) failed: %v", tt.payload, err)
			}
			if *got != *tt.want {
				t.Errorf("ParseQRPayload(%q) = %+v, want %+v", tt.payload, got, tt.want)
			}
		})
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		server, port, want string
	}{
		{"cam.local", "8080", "http://cam.local:8080"},
		{"cam.local", "", "http://cam.local"},
		{"http://cam.local", "8080", "http://cam.local:8080"},
		{"https://cam.local/", "", "https://cam.local"},
	}

	for _, tt := range tests {
		if got := baseURL(tt.server, tt.port); got != tt.want {
			t.Errorf("baseURL(%q, %q) = %q, want %q", tt.server, tt.port, got, tt.want)
		}
	}
}
