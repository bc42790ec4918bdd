package wxpay

import (
	"bytes"
	"context"
	"crypto/md5" //nolint:gosec
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// ModeMock - шлюз не вызывается, prepay_id чеканится локально. Режим для
	// разработки и стендов без доступа к внешнему шлюзу.
	ModeMock = "MOCK"
	ModeReal = "REAL"
)

const RouteUnifiedOrder = "/pay/unifiedorder"

// Client инициирует оплату во внешнем платежном шлюзе и собирает подписанные
// параметры платежного виджета. Реализует service.PaymentGateway.
type Client struct {
	baseURL    string
	mode       string
	httpClient *http.Client
}

func NewClient(baseURL, mode string) *Client {
	return &Client{
		baseURL:    baseURL,
		mode:       mode,
		httpClient: http.DefaultClient,
	}
}

type unifiedOrderRequest struct {
	OrderID     string `json:"order_id"`
	AmountCents int64  `json:"amount_cents"`
}

type unifiedOrderResponse struct {
	PrepayID string `json:"prepay_id"`
}

// Initiate получает prepay_id у шлюза и возвращает параметры виджета для
// клиента. Ошибки шлюза разворачиваются в domain.ErrUpstream.
func (c *Client) Initiate(ctx context.Context, orderID string, amountCents int64) (map[string]string, error) {
	prepayID, err := c.prepayID(ctx, orderID, amountCents)
	if err != nil {
		return nil, errors.Wrapf(err, "initiate payment of order `%s`", orderID)
	}
	return buildClientParams(prepayID), nil
}

//nolint:nonamedreturns
func (c *Client) prepayID(ctx context.Context, orderID string, amountCents int64) (prepayID string, err error) {
	if c.mode == ModeMock {
		return strings.ReplaceAll(uuid.NewString(), "-", ""), nil
	}

	body, marshalErr := json.Marshal(unifiedOrderRequest{
		OrderID:     orderID,
		AmountCents: amountCents,
	})
	if marshalErr != nil {
		return "", errors.Wrap(marshalErr, "marshal request")
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RouteUnifiedOrder, bytes.NewReader(body))
	if reqErr != nil {
		return "", errors.Wrap(reqErr, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return "", errors.Wrap(doErr, "do request")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", NewStatusCodeError(resp.StatusCode)
	}

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return "", errors.Wrap(readErr, "read response")
	}

	var parsed unifiedOrderResponse
	if jsonErr := json.Unmarshal(respBody, &parsed); jsonErr != nil {
		return "", errors.Wrap(jsonErr, "parse response")
	}
	if parsed.PrepayID == "" {
		return "", errors.New("empty prepay_id in response")
	}
	return parsed.PrepayID, nil
}

// buildClientParams собирает подписанный набор параметров платежного виджета.
// Подпись MD5 от конкатенации timeStamp+nonceStr+package; схема зафиксирована
// клиентским контрактом.
func buildClientParams(prepayID string) map[string]string {
	timeStamp := strconv.FormatInt(time.Now().Unix(), 10)
	nonceStr := strings.ReplaceAll(uuid.NewString(), "-", "")
	pkg := "prepay_id=" + prepayID

	sum := md5.Sum([]byte(timeStamp + nonceStr + pkg)) //nolint:gosec
	return map[string]string{
		"timeStamp": timeStamp,
		"nonceStr":  nonceStr,
		"package":   pkg,
		"signType":  "MD5",
		"paySign":   strings.ToUpper(fmt.Sprintf("%x", sum)),
	}
}
