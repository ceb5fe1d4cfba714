package sheetsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/infrastructure/cache"
)

// HTTPClient é a abstração mínima de transporte, substituível nos testes.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client busca a exportação CSV publicada de uma planilha e a materializa como
// matriz retangular de strings (primeira linha = cabeçalho). É a única borda
// assíncrona do sistema: o core consome apenas as matrizes já materializadas.
type Client struct {
	httpc HTTPClient
	cache *cache.Cache
	ttl   time.Duration
}

func New(timeout time.Duration, c *cache.Cache, ttl time.Duration) *Client {
	return &Client{
		httpc: &http.Client{Timeout: timeout},
		cache: c,
		ttl:   ttl,
	}
}

// NewWithHTTPClient permite injetar o transporte; usado nos testes.
func NewWithHTTPClient(httpc HTTPClient, c *cache.Cache, ttl time.Duration) *Client {
	return &Client{httpc: httpc, cache: c, ttl: ttl}
}

// FetchRows retorna a matriz de linhas da planilha. Respostas recentes vêm do
// cache; refresh=true força o round-trip e substitui a entrada cacheada.
func (c *Client) FetchRows(ctx context.Context, url string, refresh bool) ([][]string, error) {
	if url == "" {
		return nil, errors.New("url da planilha não configurada")
	}

	if !refresh && c.cache != nil {
		if v, ok := c.cache.Get(url); ok {
			return v.([][]string), nil
		}
	}

	rows, err := c.fetchWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(url, rows, c.ttl)
	}
	return rows, nil
}

type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("planilha respondeu %d: %s", e.status, e.body)
}

// retryable decide se vale nova tentativa: erros de transporte e 5xx sim;
// respostas 4xx são definitivas e repetir não muda o resultado.
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.status >= 500
	}
	return true
}

func (c *Client) fetchWithRetry(ctx context.Context, url string) ([][]string, error) {
	var lastErr error
	for i := 0; i < 3; i++ {
		rows, err := c.fetch(ctx, url)
		if err == nil {
			return rows, nil
		}
		lastErr = err
		if !retryable(err) || ctx.Err() != nil {
			return nil, lastErr
		}
		// backoff exponencial + jitter
		sleep := time.Duration((1<<i)*100) * time.Millisecond
		sleep += time.Duration(rand.Intn(150)) * time.Millisecond
		time.Sleep(sleep)
	}
	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, url string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &statusError{status: resp.StatusCode, body: string(b)}
	}

	reader := csv.NewReader(resp.Body)
	// Exportações de planilha nem sempre são retangulares; linhas curtas são
	// toleradas e tratadas como células vazias pelo parser.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("falha ao decodificar CSV: %w", err)
	}
	return rows, nil
}
