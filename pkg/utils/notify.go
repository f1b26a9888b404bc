package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

var notifyClient = &http.Client{Timeout: 10 * time.Second}

// SendDiscordMessage kirim pesan ke channel Discord via webhook.
// Fire-and-forget: gagal ya gagal, tidak ada retry.
func SendDiscordMessage(message string) error {
	url := os.Getenv("DISCORD_WEBHOOK_URL")
	if url == "" {
		return errors.New("DISCORD_WEBHOOK_URL belum di-set")
	}

	body, err := json.Marshal(map[string]string{"content": message})
	if err != nil {
		return err
	}

	resp, err := notifyClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Println("Gagal kirim notif Discord:", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Println("Discord webhook balas status", resp.StatusCode)
		return fmt.Errorf("discord webhook status %d", resp.StatusCode)
	}
	return nil
}
