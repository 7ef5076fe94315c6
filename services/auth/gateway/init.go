package gateway

import (
	"time"

	httpclient "github.com/careloop/careloop/internal/pkg/http"
	"github.com/careloop/careloop/internal/pkg/nsq"
)

// AuthGW implements the outbound gateway interface: notifications over NSQ
// and entitlement lookups over HTTP
type AuthGW struct {
	producer         *nsq.Producer
	collectionClient *httpclient.Client
}

// NewAuthGW creates a new auth gateway instance
func NewAuthGW(producer *nsq.Producer, collectionServiceURL string) *AuthGW {
	return &AuthGW{
		producer:         producer,
		collectionClient: httpclient.NewClient(collectionServiceURL, 10*time.Second),
	}
}
