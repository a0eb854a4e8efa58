package p2p

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibp2pConfig(t *testing.T) {
	config, err := NewLibp2pConfig(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "/ip4/0.0.0.0/tcp/0", config.ListeningMultiaddr.String())
	assert.Empty(t, config.BootstrapPeers)
	assert.False(t, config.MDNS)
	assert.True(t, config.Kademlia)
	assert.Equal(t, uint32(75), config.TargetPeerCount)
}

func TestNewLibp2pConfig(t *testing.T) {
	bootstrapPeer := "/ip4/104.131.131.82/tcp/4001/p2p/QmaCpDMGvV2BGHeYERUEnMQAwe8rdvrwbYFJkLbwX5p5Ty"

	v := viper.New()
	v.Set(CfgListeningMultiaddr, "/ip4/127.0.0.1/tcp/1347")
	v.Set(CfgBootstrapPeers, []string{bootstrapPeer})
	v.Set(CfgMDNS, true)
	v.Set(CfgKademlia, false)
	v.Set(CfgTargetPeerCount, 10)

	config, err := NewLibp2pConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "/ip4/127.0.0.1/tcp/1347", config.ListeningMultiaddr.String())
	require.Len(t, config.BootstrapPeers, 1)
	assert.Equal(t, bootstrapPeer, config.BootstrapPeers[0].String())
	assert.True(t, config.MDNS)
	assert.False(t, config.Kademlia)
	assert.Equal(t, uint32(10), config.TargetPeerCount)
	assert.Contains(t, config.String(), "targetPeerCount")
}

func TestNewLibp2pConfig_Invalid(t *testing.T) {
	v := viper.New()
	v.Set(CfgListeningMultiaddr, "0.0.0.0:1347")
	_, err := NewLibp2pConfig(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set(CfgBootstrapPeers, []string{"/ip4/999.1.1.1/tcp/1"})
	_, err = NewLibp2pConfig(v)
	assert.Error(t, err)
}
