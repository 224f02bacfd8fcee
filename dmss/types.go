package dmss

import "encoding/json"

type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
)

// envelope is the vendor's fixed response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Camera struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Status   string `json:"status"` // online / offline
}

// remoteCamera is the vendor's camera shape; its online boolean is mapped to
// the status string the dashboard expects.
type remoteCamera struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Online   bool   `json:"online"`
}

type SystemInfo struct {
	CameraCount   int    `json:"camera_count"`
	OnlineCameras int    `json:"online_cameras"`
	StorageUsed   int64  `json:"storage_used"`
	StorageTotal  int64  `json:"storage_total"`
	Uptime        string `json:"uptime"`
}

type Recording struct {
	ID        string `json:"id"`
	CameraID  string `json:"camera_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	SizeBytes int64  `json:"size_bytes"`
}

// QRPayload is the decoded QR-code credential, either a JSON object or the
// colon-delimited form deviceId:server:port:token[:timestamp].
type QRPayload struct {
	DeviceID  string `json:"deviceId"`
	Server    string `json:"server"`
	Port      string `json:"port"`
	Token     string `json:"token"`
	Timestamp string `json:"timestamp,omitempty"`
}
