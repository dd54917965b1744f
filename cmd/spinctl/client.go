package main

import (
	dto "brand_site/internal/api/dto/wheel"
	"brand_site/pkg/resp"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// spinOutcome - ответ сервера на попытку прокрутки
type spinOutcome struct {
	Status int
	Result *dto.SpinResponse
	// Приз из прошлой прокрутки при 409
	Existing *dto.PrizeResponse
	Redirect string
	Error    string
}

type client struct {
	http    *http.Client
	baseURL string
	token   string
}

func (c *client) spin(ctx context.Context, currentRotation float64) (*spinOutcome, error) {
	body, err := json.Marshal(dto.SpinRequest{CurrentRotation: currentRotation})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.baseURL, "/")+"/wheel/spin", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	out := &spinOutcome{Status: res.StatusCode}
	switch res.StatusCode {
	case http.StatusOK:
		var ok dto.SpinResponse
		if err := json.NewDecoder(res.Body).Decode(&ok); err != nil {
			return nil, fmt.Errorf("decode spin response: %w", err)
		}
		out.Result = &ok
	case http.StatusConflict:
		var conflict dto.AlreadySpunResponse
		if err := json.NewDecoder(res.Body).Decode(&conflict); err != nil {
			return nil, fmt.Errorf("decode conflict response: %w", err)
		}
		out.Error = conflict.Error
		out.Existing = conflict.Prize
	default:
		var e resp.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&e); err != nil {
			return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
		}
		out.Error = e.Error
		out.Redirect = e.Redirect
	}

	return out, nil
}
