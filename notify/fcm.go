package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const fcmSendURL = "https://fcm.googleapis.com/fcm/send"

// FCM pushes through the legacy HTTP API with a server key.
type FCM struct {
	ServerKey string
	URL       string
	Client    *http.Client
}

func NewFCM(serverKey string) *FCM {
	return &FCM{
		ServerKey: serverKey,
		URL:       fcmSendURL,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *FCM) Push(deviceToken string, n Notification) error {
	payload, err := json.Marshal(map[string]any{
		"to":           deviceToken,
		"notification": n,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, f.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+f.ServerKey)

	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("fcm: send returned %s", resp.Status)
	}
	return nil
}
