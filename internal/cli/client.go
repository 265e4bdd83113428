package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pacerlabs/pacer/internal/daemon"
	"github.com/pacerlabs/pacer/internal/domain"
	"github.com/pacerlabs/pacer/internal/view"
)

// client is a thin HTTP client for the daemon's local API.
type client struct {
	base string
	http *http.Client
}

// newClient builds a client from the daemon config (host/port may be
// overridden via PACER_API_HOST / PACER_API_PORT).
func newClient() (*client, error) {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &client{
		base: fmt.Sprintf("http://%s:%d", cfg.API.Host, cfg.API.Port),
		http: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *client) do(method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.base+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("is the daemon running? start it with 'pacer serve' (%w)", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("%s", apiErr.Error.Message)
		}
		return fmt.Errorf("daemon returned %s", resp.Status)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *client) addTask(name string, durationSeconds int64) (domain.Task, error) {
	var task domain.Task
	err := c.do(http.MethodPost, "/api/tasks", map[string]interface{}{
		"name":             name,
		"duration_seconds": durationSeconds,
	}, &task)
	return task, err
}

func (c *client) togglePause(id string) (domain.Task, error) {
	var task domain.Task
	err := c.do(http.MethodPost, "/api/tasks/"+id+"/pause", nil, &task)
	return task, err
}

func (c *client) stopTask(id string) (domain.Task, error) {
	var task domain.Task
	err := c.do(http.MethodPost, "/api/tasks/"+id+"/stop", nil, &task)
	return task, err
}

// todayView mirrors api.TodayResponse with concrete task types.
type todayView struct {
	Tasks     []domain.Task `json:"tasks"`
	Running   int           `json:"running"`
	Completed int           `json:"completed"`
}

func (c *client) today() (todayView, error) {
	var out todayView
	err := c.do(http.MethodGet, "/api/tasks/today", nil, &out)
	return out, err
}

func (c *client) history() ([]view.DayGroup, error) {
	var out []view.DayGroup
	err := c.do(http.MethodGet, "/api/tasks/history", nil, &out)
	return out, err
}
