package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/grochain/listing-finder/pkg/common/jsoncompat"
	"github.com/grochain/listing-finder/pkg/types"
)

var ErrUnexpectedStatus = errors.New("unexpected status from api")

// ApiClient reads listing collections from the GroChain backend.
type ApiClient struct {
	BaseUrl string
	Token   string
	Client  *http.Client
}

func NewApiClient(baseUrl, token string) *ApiClient {
	return &ApiClient{
		BaseUrl: strings.TrimSuffix(baseUrl, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *ApiClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseUrl+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	res, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, path, res.StatusCode)
	}
	return io.ReadAll(res.Body)
}

// decodeList accepts a bare array, {"data": [...]} or {"data": {key: [...]}}.
func decodeList[T any](body []byte, key string, out *[]T) error {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		return jsoncompat.Unmarshal(body, out)
	}
	var env envelope
	if err := jsoncompat.Unmarshal(body, &env); err != nil {
		return err
	}
	if env.Status != "" && env.Status != "success" {
		return fmt.Errorf("api status %q: %s", env.Status, env.Message)
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*out = []T{}
		return nil
	}
	if data[0] == '[' {
		return jsoncompat.Unmarshal(data, out)
	}
	var keyed map[string]json.RawMessage
	if err := jsoncompat.Unmarshal(data, &keyed); err != nil {
		return err
	}
	list, ok := keyed[key]
	if !ok {
		return fmt.Errorf("api response has no %q list", key)
	}
	return jsoncompat.Unmarshal(list, out)
}

type Endpoint[T types.Listing] struct {
	client *ApiClient
	Path   string
	Key    string
}

func NewEndpoint[T types.Listing](client *ApiClient, path, key string) *Endpoint[T] {
	return &Endpoint[T]{client: client, Path: path, Key: key}
}

func (e *Endpoint[T]) Fetch(ctx context.Context) ([]T, error) {
	body, err := e.client.get(ctx, e.Path)
	if err != nil {
		return nil, err
	}
	ret := []T{}
	if err := decodeList(body, e.Key, &ret); err != nil {
		return nil, fmt.Errorf("decode %s: %w", e.Path, err)
	}
	return ret, nil
}

func (c *ApiClient) Products() *Endpoint[*types.Product] {
	return NewEndpoint[*types.Product](c, "/api/marketplace/listings", "listings")
}

func (c *ApiClient) Partners() *Endpoint[*types.Partner] {
	return NewEndpoint[*types.Partner](c, "/api/partners", "partners")
}

func (c *ApiClient) Payments() *Endpoint[*types.Payment] {
	return NewEndpoint[*types.Payment](c, "/api/payments/transactions", "transactions")
}

func (c *ApiClient) Shipments() *Endpoint[*types.Shipment] {
	return NewEndpoint[*types.Shipment](c, "/api/shipments", "shipments")
}

func (c *ApiClient) Approvals() *Endpoint[*types.HarvestApproval] {
	return NewEndpoint[*types.HarvestApproval](c, "/api/harvest-approval", "harvests")
}
