// Package venue implements the Venue Resolver: given a token or pair
// identifier, it queries an external market-data service and returns
// the venue with deepest liquidity plus auxiliary metadata, cached with
// a 60s TTL. Grounded on the outbound-call shape of
// internal/rpc/client.go (context-bound http.Client, per-call timeout)
// and the two-tier TTL-cache idiom of internal/tools/cache.go.
package venue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/solintent/engine/internal/cache"
	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/obstrace"
)

// RequestTimeout bounds every outbound market-data call, per §4.7/§5.
const RequestTimeout = 5 * time.Second

// aliasTable translates a raw venue identifier from the market-data
// service into the engine's canonical venue name, per §4.7 step 3.
var aliasTable = map[string]string{
	"raydium-clmm": "raydium",
	"whirlpool":    "orca",
	"meteora-dlmm": "meteora",
	"pump-fun":     "pumpfun",
}

func resolveAlias(venue string) string {
	if alias, ok := aliasTable[venue]; ok {
		return alias
	}
	return venue
}

// Resolver queries a market-data service and caches results.
type Resolver struct {
	baseURL    string
	chain      string
	httpClient *http.Client
	tokenCache cache.Cache
	pairCache  cache.Cache
}

func New(baseURL, chain string, tokenCache, pairCache cache.Cache) *Resolver {
	return &Resolver{
		baseURL:    baseURL,
		chain:      chain,
		httpClient: &http.Client{Timeout: RequestTimeout},
		tokenCache: tokenCache,
		pairCache:  pairCache,
	}
}

type marketPair struct {
	ChainID      string  `json:"chainId"`
	DexID        string  `json:"dexId"`
	PairAddress  string  `json:"pairAddress"`
	BaseMint     string  `json:"baseMint"`
	QuoteMint    string  `json:"quoteMint"`
	PriceUSD     float64 `json:"priceUsd"`
	LiquidityUSD float64 `json:"liquidityUsd"`
}

type tokenResponse struct {
	Pairs []marketPair `json:"pairs"`
}

type pairResponse struct {
	Pair *marketPair `json:"pair"`
}

// ResolveToken implements §4.7's token-lookup algorithm: fetch pairs,
// keep only the target chain, sort by liquidity descending, take the
// top entry's venue as primary, and translate every distinct venue
// through the alias table. Both positive and negative results are
// cached for 60s.
func (r *Resolver) ResolveToken(ctx context.Context, mint string) (*intent.TokenInfo, error) {
	ctx, span := obstrace.StartVenueResolve(ctx, "token", mint)
	defer span.End()

	key := fmt.Sprintf(cache.VenueTokenKeyPattern, mint)
	if cached, ok, err := r.tokenCache.Get(ctx, key); err == nil && ok {
		if cache.IsNegative(cached) {
			return nil, nil
		}
		var info intent.TokenInfo
		if json.Unmarshal([]byte(cached), &info) == nil {
			return &info, nil
		}
	}

	var resp tokenResponse
	if err := r.getJSON(ctx, fmt.Sprintf("%s/tokens/%s", r.baseURL, mint), &resp); err != nil {
		log.Warn().Err(err).Str("mint", mint).Msg("venue resolver: token lookup failed")
		_ = r.tokenCache.Set(ctx, key, cache.NegativeValue(), cache.VenueTokenTTL)
		return nil, nil
	}

	var onChain []marketPair
	for _, p := range resp.Pairs {
		if p.ChainID == r.chain {
			onChain = append(onChain, p)
		}
	}
	if len(onChain) == 0 {
		_ = r.tokenCache.Set(ctx, key, cache.NegativeValue(), cache.VenueTokenTTL)
		return nil, nil
	}

	sort.Slice(onChain, func(i, j int) bool { return onChain[i].LiquidityUSD > onChain[j].LiquidityUSD })
	primary := onChain[0]

	seenVenues := map[string]struct{}{}
	var allVenues []string
	for _, p := range onChain {
		v := resolveAlias(p.DexID)
		if _, ok := seenVenues[v]; ok {
			continue
		}
		seenVenues[v] = struct{}{}
		allVenues = append(allVenues, v)
	}

	info := &intent.TokenInfo{
		Mint:         mint,
		PrimaryVenue: resolveAlias(primary.DexID),
		PrimaryPool:  primary.PairAddress,
		AllVenues:    allVenues,
		PriceUSD:     primary.PriceUSD,
		LiquidityUSD: primary.LiquidityUSD,
	}

	if blob, err := json.Marshal(info); err == nil {
		_ = r.tokenCache.Set(ctx, key, string(blob), cache.VenueTokenTTL)
	}
	return info, nil
}

// ResolvePair implements §4.7's pair-lookup algorithm.
func (r *Resolver) ResolvePair(ctx context.Context, pool string) (*intent.PairInfo, error) {
	ctx, span := obstrace.StartVenueResolve(ctx, "pair", pool)
	defer span.End()

	key := fmt.Sprintf(cache.VenuePairKeyPattern, pool)
	if cached, ok, err := r.pairCache.Get(ctx, key); err == nil && ok {
		if cache.IsNegative(cached) {
			return nil, nil
		}
		var info intent.PairInfo
		if json.Unmarshal([]byte(cached), &info) == nil {
			return &info, nil
		}
	}

	var resp pairResponse
	if err := r.getJSON(ctx, fmt.Sprintf("%s/pairs/%s/%s", r.baseURL, r.chain, pool), &resp); err != nil {
		log.Warn().Err(err).Str("pool", pool).Msg("venue resolver: pair lookup failed")
		_ = r.pairCache.Set(ctx, key, cache.NegativeValue(), cache.VenuePairTTL)
		return nil, nil
	}
	if resp.Pair == nil || resp.Pair.ChainID != r.chain {
		_ = r.pairCache.Set(ctx, key, cache.NegativeValue(), cache.VenuePairTTL)
		return nil, nil
	}

	info := &intent.PairInfo{
		Protocol:  resolveAlias(resp.Pair.DexID),
		BaseMint:  resp.Pair.BaseMint,
		QuoteMint: resp.Pair.QuoteMint,
		Pool:      resp.Pair.PairAddress,
	}
	if blob, err := json.Marshal(info); err == nil {
		_ = r.pairCache.Set(ctx, key, string(blob), cache.VenuePairTTL)
	}
	return info, nil
}

func (r *Resolver) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("market-data service returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
