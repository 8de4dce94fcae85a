package httpclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/pkg/utils"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// DefaultCosmosRESTURL is the public Cosmos Hub REST gateway.
	DefaultCosmosRESTURL = "https://cosmos-rest.publicnode.com"
	// DefaultStakingDenom is the micro-denomination of ATOM.
	DefaultStakingDenom = "uatom"
	// DefaultDenomExponent converts uatom into ATOM.
	DefaultDenomExponent = 6
)

// cosmosClientImpl implements port.CosmosClient against the Cosmos SDK REST gateway.
type cosmosClientImpl struct {
	client   *fasthttp.Client
	baseURL  string
	denom    string
	exponent int32
	logger   *zap.Logger
}

// NewCosmosClient creates a REST client. Only entries in denom are counted; amounts are divided by 10^exponent.
func NewCosmosClient(baseURL, denom string, exponent int32, logger *zap.Logger) port.CosmosClient {
	if baseURL == "" {
		baseURL = DefaultCosmosRESTURL
	}
	if denom == "" {
		denom = DefaultStakingDenom
	}
	if exponent <= 0 {
		exponent = DefaultDenomExponent
	}
	return &cosmosClientImpl{
		client:   &fasthttp.Client{},
		baseURL:  strings.TrimRight(baseURL, "/"),
		denom:    denom,
		exponent: exponent,
		logger:   logger.Named("CosmosClient"),
	}
}

// GetBalance returns the spendable balance in the staking denom.
func (c *cosmosClientImpl) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	var body bankBalancesResponse
	if err := c.getJSON(ctx, "/cosmos/bank/v1beta1/balances/"+url.PathEscape(address), &body); err != nil {
		return decimal.Zero, err
	}
	return c.sumDenom(body.Balances)
}

// GetStaked returns the sum of all delegations in the staking denom.
// An account without delegations has a staked amount of zero.
func (c *cosmosClientImpl) GetStaked(ctx context.Context, address string) (decimal.Decimal, error) {
	var body delegationsResponse
	if err := c.getJSON(ctx, "/cosmos/staking/v1beta1/delegations/"+url.PathEscape(address), &body); err != nil {
		return decimal.Zero, err
	}
	coins := make([]Coin, 0, len(body.DelegationResponses))
	for _, d := range body.DelegationResponses {
		coins = append(coins, d.Balance)
	}
	return c.sumDenom(coins)
}

// GetRewards returns the unclaimed delegator rewards in the staking denom.
func (c *cosmosClientImpl) GetRewards(ctx context.Context, address string) (decimal.Decimal, error) {
	var body rewardsResponse
	path := "/cosmos/distribution/v1beta1/delegators/" + url.PathEscape(address) + "/rewards"
	if err := c.getJSON(ctx, path, &body); err != nil {
		return decimal.Zero, err
	}
	return c.sumDenom(body.Total)
}

// sumDenom adds up the entries in the staking denom. Other denoms are ignored.
func (c *cosmosClientImpl) sumDenom(coins []Coin) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, coin := range coins {
		if coin.Denom != c.denom {
			continue
		}
		amount, err := utils.ParseMicroAmount(coin.Amount, c.exponent)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parse %s amount: %w", c.denom, err)
		}
		total = total.Add(amount)
	}
	return total, nil
}

// getJSON performs a GET and decodes a 200 response into out.
// Without a deadline on ctx the request may wait forever: no default timeout is applied.
func (c *cosmosClientImpl) getJSON(ctx context.Context, path string, out any) error {
	requestURL := c.baseURL + path
	c.logger.Debug("Requesting Cosmos REST endpoint", zap.String("url", requestURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
	}

	rawBody := resp.Body()
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("request to %s failed with status %d: %s", requestURL, resp.StatusCode(), strings.TrimSpace(string(rawBody)))
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response from %s: %w", requestURL, err)
	}
	return nil
}
