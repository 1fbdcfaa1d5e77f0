package probes

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// probeHTTP concentra o transporte HTTP das sondas. As respostas são blobs
// JSON opacos: só o derivador de scores e o construtor de insights interpretam
// o conteúdo
type probeHTTP struct {
	httpClient *http.Client
	timeout    time.Duration
}

func newProbeHTTP(timeoutSeconds int) *probeHTTP {
	return &probeHTTP{
		httpClient: &http.Client{},
		timeout:    time.Duration(timeoutSeconds) * time.Second,
	}
}

func (p *probeHTTP) getJSON(ctx context.Context, url string) (map[string]any, error) {
	reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar a requisição da sonda")
	}

	return p.do(req)
}

func (p *probeHTTP) postJSON(ctx context.Context, url string, payload any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o corpo da sonda")
	}

	reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar a requisição da sonda")
	}
	req.Header.Set("Content-Type", "application/json")

	return p.do(req)
}

func (p *probeHTTP) do(req *http.Request) (map[string]any, error) {
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição da sonda")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta da sonda")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("sonda respondeu com status %d", resp.StatusCode)
	}

	result := map[string]any{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta da sonda")
	}

	return result, nil
}
