package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx  map[string]bool
	ips map[string]bool
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if f.mx[name] {
		return []*net.MX{{Host: "mx." + name}}, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if f.ips[host] {
		return []net.IPAddr{{IP: net.IPv4(192, 0, 2, 1)}}, nil
	}
	return nil, errors.New("no such host")
}

func TestDomainResolves(t *testing.T) {
	r := fakeResolver{
		mx:  map[string]bool{"hotel.mx": true},
		ips: map[string]bool{"a-only.example": true},
	}
	ctx := context.Background()

	assert.True(t, DomainResolves(ctx, r, "cris@hotel.mx"))
	assert.True(t, DomainResolves(ctx, r, "x@a-only.example"))
	assert.False(t, DomainResolves(ctx, r, "x@nowhere.invalid"))
	assert.False(t, DomainResolves(ctx, r, "no-at-sign"))
	assert.False(t, DomainResolves(ctx, r, "trailing@"))
}
