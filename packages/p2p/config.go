package p2p

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/multiformats/go-multiaddr"
	"github.com/spf13/viper"
)

// DefaultTargetPeerCount is the amount of peers a node tries to stay connected to.
const DefaultTargetPeerCount uint32 = 75

// Libp2pConfig is the peer discovery configuration of a node.
type Libp2pConfig struct {
	// ListeningMultiaddr is the local address.
	ListeningMultiaddr multiaddr.Multiaddr
	// BootstrapPeers are dialed on startup.
	BootstrapPeers []multiaddr.Multiaddr
	// MDNS enables discovery in the local network.
	MDNS bool
	// Kademlia enables DHT based discovery.
	Kademlia bool
	// TargetPeerCount is the amount of peers discovery stops at.
	TargetPeerCount uint32
}

// DefaultLibp2pConfig returns the configuration used when nothing is configured.
func DefaultLibp2pConfig() *Libp2pConfig {
	return &Libp2pConfig{
		ListeningMultiaddr: multiaddr.StringCast(defaultListeningMultiaddr),
		BootstrapPeers:     []multiaddr.Multiaddr{},
		MDNS:               false,
		Kademlia:           true,
		TargetPeerCount:    DefaultTargetPeerCount,
	}
}

// NewLibp2pConfig reads the p2p.* parameters of the given config. Parameters that are not set keep their default.
func NewLibp2pConfig(config *viper.Viper) (*Libp2pConfig, error) {
	libp2pConfig := DefaultLibp2pConfig()

	if config.IsSet(CfgListeningMultiaddr) {
		listeningMultiaddr, err := multiaddr.NewMultiaddr(config.GetString(CfgListeningMultiaddr))
		if err != nil {
			return nil, errors.Errorf("failed to parse %s: %w", CfgListeningMultiaddr, err)
		}
		libp2pConfig.ListeningMultiaddr = listeningMultiaddr
	}

	for _, bootstrapPeer := range config.GetStringSlice(CfgBootstrapPeers) {
		if bootstrapPeer == "" {
			continue
		}

		peerMultiaddr, err := multiaddr.NewMultiaddr(bootstrapPeer)
		if err != nil {
			return nil, errors.Errorf("failed to parse bootstrap peer %s: %w", bootstrapPeer, err)
		}
		libp2pConfig.BootstrapPeers = append(libp2pConfig.BootstrapPeers, peerMultiaddr)
	}

	if config.IsSet(CfgMDNS) {
		libp2pConfig.MDNS = config.GetBool(CfgMDNS)
	}
	if config.IsSet(CfgKademlia) {
		libp2pConfig.Kademlia = config.GetBool(CfgKademlia)
	}
	if config.IsSet(CfgTargetPeerCount) {
		libp2pConfig.TargetPeerCount = config.GetUint32(CfgTargetPeerCount)
	}

	return libp2pConfig, nil
}

// String returns a human-readable version of the Libp2pConfig.
func (l *Libp2pConfig) String() string {
	bootstrapPeers := make([]string, len(l.BootstrapPeers))
	for i, bootstrapPeer := range l.BootstrapPeers {
		bootstrapPeers[i] = bootstrapPeer.String()
	}

	return stringify.Struct("Libp2pConfig",
		stringify.StructField("listeningMultiaddr", l.ListeningMultiaddr.String()),
		stringify.StructField("bootstrapPeers", bootstrapPeers),
		stringify.StructField("mdns", l.MDNS),
		stringify.StructField("kademlia", l.Kademlia),
		stringify.StructField("targetPeerCount", l.TargetPeerCount),
	)
}
