package p2p

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgListeningMultiaddr is the local address of the node.
	CfgListeningMultiaddr = "p2p.listeningMultiaddr"
	// CfgBootstrapPeers is the list of peers dialed on startup.
	CfgBootstrapPeers = "p2p.bootstrapPeers"
	// CfgMDNS enables discovery in the local network.
	CfgMDNS = "p2p.mdns"
	// CfgKademlia enables DHT based discovery.
	CfgKademlia = "p2p.kademlia"
	// CfgTargetPeerCount is the amount of peers discovery stops at.
	CfgTargetPeerCount = "p2p.targetPeerCount"
)

const defaultListeningMultiaddr = "/ip4/0.0.0.0/tcp/0"

func init() {
	flag.String(CfgListeningMultiaddr, defaultListeningMultiaddr, "the local address of the node")
	flag.StringSlice(CfgBootstrapPeers, nil, "the peers dialed on startup")
	flag.Bool(CfgMDNS, false, "enable discovery in the local network")
	flag.Bool(CfgKademlia, true, "enable DHT based discovery")
	flag.Uint32(CfgTargetPeerCount, DefaultTargetPeerCount, "the amount of peers discovery stops at")
}
