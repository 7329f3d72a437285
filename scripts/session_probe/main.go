// Command session_probe is a smoke check for a running panel instance. It
// opens a session, triggers a data load, and walks the read endpoints,
// reporting per-step status and latency. Exit code 1 when any step fails.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type step struct {
	Name     string
	Method   string
	Path     string
	Status   int
	Duration time.Duration
	Err      error
}

func main() {
	var (
		base     string
		email    string
		password string
		timeout  time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080/api/v1", "Panel API base URL")
	flag.StringVar(&email, "email", "", "Login email")
	flag.StringVar(&password, "password", "", "Login password")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	if email == "" || password == "" {
		log.Fatal("both -email and -password are required")
	}

	client := &http.Client{Timeout: timeout}

	token, loginStep := login(client, base, email, password)
	steps := []step{loginStep}
	if loginStep.Err == nil {
		for _, probe := range []struct {
			name, method, path string
		}{
			{"load data", http.MethodPost, "/data/load"},
			{"snapshot", http.MethodGet, "/data"},
			{"professors", http.MethodGet, "/professors"},
			{"stats", http.MethodGet, "/professors/stats"},
			{"comments", http.MethodGet, "/comments"},
			{"me", http.MethodGet, "/auth/me"},
			{"logout", http.MethodPost, "/auth/logout"},
		} {
			steps = append(steps, run(client, base, token, probe.name, probe.method, probe.path))
		}
	}

	failures := 0
	for _, s := range steps {
		mark := "ok"
		if s.Err != nil || s.Status >= 400 {
			mark = "FAIL"
			failures++
		}
		fmt.Printf("%-12s %-6s %-20s %3d %8s %s\n", s.Name, s.Method, s.Path, s.Status, s.Duration.Round(time.Millisecond), mark)
		if s.Err != nil {
			fmt.Printf("             error: %v\n", s.Err)
		}
	}

	fmt.Printf("Steps: %d, failures: %d\n", len(steps), failures)
	if failures > 0 {
		os.Exit(1)
	}
}

func login(client *http.Client, base, email, password string) (string, step) {
	s := step{Name: "login", Method: http.MethodPost, Path: "/auth/login"}

	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	start := time.Now()
	resp, err := client.Post(base+s.Path, "application/json", bytes.NewReader(payload))
	s.Duration = time.Since(start)
	if err != nil {
		s.Err = err
		return "", s
	}
	defer resp.Body.Close()
	s.Status = resp.StatusCode

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.Err = fmt.Errorf("read login response: %w", err)
		return "", s
	}
	if resp.StatusCode != http.StatusOK {
		s.Err = fmt.Errorf("login rejected: %s", bytes.TrimSpace(body))
		return "", s
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		s.Err = fmt.Errorf("decode login response: %w", err)
		return "", s
	}
	if envelope.Data.Token == "" {
		s.Err = fmt.Errorf("login response carried no token")
	}
	return envelope.Data.Token, s
}

func run(client *http.Client, base, token, name, method, path string) step {
	s := step{Name: name, Method: method, Path: path}

	req, err := http.NewRequest(method, base+path, nil)
	if err != nil {
		s.Err = err
		return s
	}
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := client.Do(req)
	s.Duration = time.Since(start)
	if err != nil {
		s.Err = err
		return s
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	s.Status = resp.StatusCode
	return s
}
