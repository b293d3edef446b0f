//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const (
	baseURL   = "http://localhost:3000/api"
	sessionID = "smoke-test"
)

// Pretty print JSON helper
func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", sessionID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(title, method, url string, body interface{}) {
	color.Yellow("\n%s", title)
	resp, raw, err := sendRequest(method, url, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		color.Red("Status: %s", resp.Status)
	} else {
		color.Green("Status: %s", resp.Status)
	}
	prettyPrint(raw)
}

func main() {
	color.Cyan("🚀 Starting Chat API smoke test\n")

	step("1. Topic reply", "POST", "/chat", map[string]string{"message": "Explain binary search"})
	step("2. Attribution beats topic", "POST", "/chat", map[string]string{"message": "who built this algorithms tool"})
	step("3. Complexity fallback", "POST", "/chat", map[string]string{"message": "big o notation please"})
	step("4. Generic echo as HTML", "POST", "/chat", map[string]string{"message": "xyzzy123", "format": "html"})
	step("5. History", "GET", "/chat/history", nil)
	step("6. Stats", "GET", "/chat/stats", nil)
	step("7. Clear", "POST", "/clear_chat", nil)

	color.Cyan("\n✅ Done")
}
