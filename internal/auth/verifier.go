package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// HS256 shared secret.
	Secret string
	// JWKS endpoint for RS256/ES256 tokens.
	JWKSURL string
	// Required "iss" claim, if set.
	Issuer string
}

// Verifier validates session tokens minted by the identity provider.
type Verifier struct {
	secret []byte
	issuer string
	keys   *jwksCache
}

func NewVerifier(cfg Config) *Verifier {
	v := &Verifier{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}
	if cfg.JWKSURL != "" {
		v.keys = &jwksCache{url: cfg.JWKSURL, ttl: 10 * time.Minute, client: &http.Client{Timeout: 10 * time.Second}}
	}
	return v
}

// Enabled reports whether any key source is configured.
func (v *Verifier) Enabled() bool {
	return len(v.secret) > 0 || v.keys != nil
}

func (v *Verifier) Verify(ctx context.Context, tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, ErrNoToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "RS256", "ES256"}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(time.Minute),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.keyFor(ctx, token)
	}, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid token: %w", err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, errors.New("invalid token: missing subject")
	}

	id := Identity{UserID: sub}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}

	return id, nil
}

func (v *Verifier) keyFor(ctx context.Context, token *jwt.Token) (any, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if len(v.secret) == 0 {
			return nil, errors.New("JWT secret not configured")
		}
		return v.secret, nil

	case *jwt.SigningMethodRSA, *jwt.SigningMethodECDSA:
		if v.keys == nil {
			return nil, errors.New("JWKS URL not configured")
		}
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("missing kid in token header")
		}
		jwk, err := v.keys.get(ctx, kid)
		if err != nil {
			return nil, err
		}
		return jwk.publicKey()

	default:
		return nil, fmt.Errorf("unsupported signing method: %v", token.Header["alg"])
	}
}

type jwks struct {
	Keys []jwk `json:"keys"`
}

type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n,omitempty"`
	E   string `json:"e,omitempty"`
	Crv string `json:"crv,omitempty"`
	X   string `json:"x,omitempty"`
	Y   string `json:"y,omitempty"`
}

func (k jwk) publicKey() (any, error) {
	switch k.Kty {
	case "RSA":
		n, err := base64.RawURLEncoding.DecodeString(k.N)
		if err != nil {
			return nil, fmt.Errorf("decode n: %w", err)
		}
		e, err := base64.RawURLEncoding.DecodeString(k.E)
		if err != nil {
			return nil, fmt.Errorf("decode e: %w", err)
		}
		exp := 0
		for _, b := range e {
			exp = exp<<8 + int(b)
		}
		return &rsa.PublicKey{N: new(big.Int).SetBytes(n), E: exp}, nil

	case "EC":
		var curve elliptic.Curve
		switch k.Crv {
		case "P-256":
			curve = elliptic.P256()
		case "P-384":
			curve = elliptic.P384()
		default:
			return nil, fmt.Errorf("unsupported curve: %s", k.Crv)
		}
		x, err := base64.RawURLEncoding.DecodeString(k.X)
		if err != nil {
			return nil, fmt.Errorf("decode x: %w", err)
		}
		y, err := base64.RawURLEncoding.DecodeString(k.Y)
		if err != nil {
			return nil, fmt.Errorf("decode y: %w", err)
		}
		return &ecdsa.PublicKey{Curve: curve, X: new(big.Int).SetBytes(x), Y: new(big.Int).SetBytes(y)}, nil

	default:
		return nil, fmt.Errorf("unsupported key type: %s", k.Kty)
	}
}

type jwksCache struct {
	mu        sync.RWMutex
	url       string
	ttl       time.Duration
	client    *http.Client
	keys      map[string]jwk
	fetchedAt time.Time
}

func (c *jwksCache) get(ctx context.Context, kid string) (jwk, error) {
	c.mu.RLock()
	key, ok := c.keys[kid]
	fresh := time.Since(c.fetchedAt) < c.ttl
	c.mu.RUnlock()

	if ok && fresh {
		return key, nil
	}

	// unknown kid may mean the provider rotated keys
	if err := c.refresh(ctx); err != nil {
		return jwk{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if key, ok := c.keys[kid]; ok {
		return key, nil
	}
	return jwk{}, fmt.Errorf("key not found: %s", kid)
}

func (c *jwksCache) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS fetch failed with status: %d", resp.StatusCode)
	}

	var set jwks
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("decode JWKS: %w", err)
	}

	keys := make(map[string]jwk, len(set.Keys))
	for _, k := range set.Keys {
		keys[k.Kid] = k
	}

	c.mu.Lock()
	c.keys = keys
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	log.Info().Int("keys", len(keys)).Str("url", c.url).Msg("JWKS refreshed")
	return nil
}
