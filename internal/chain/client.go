package chain

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// ownerSelector is the 4-byte selector of the zero-argument owner() accessor.
var ownerSelector = []byte{0x8d, 0xa5, 0xcb, 0x5b}

// ZeroAddress is the burn address owner() returns after renouncing ownership.
var ZeroAddress = common.Address{}

// Client wraps go-ethereum RPC and provides the contract reads the bot needs.
type Client struct {
	rpcClient *rpc.Client
	ethClient *ethclient.Client
}

// Dial creates a new chain client from the RPC URL.
func Dial(ctx context.Context, rpcURL string) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	return &Client{
		rpcClient: rpcClient,
		ethClient: ethclient.NewClient(rpcClient),
	}, nil
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

// IsAddress reports whether s is a well-formed EVM address.
func IsAddress(s string) bool {
	return common.IsHexAddress(s)
}

// Bytecode returns the deployed code at address as a 0x-prefixed hex string.
// An empty contract yields "0x".
func (c *Client) Bytecode(ctx context.Context, address string) (string, error) {
	code, err := c.ethClient.CodeAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return "", fmt.Errorf("code at %s: %w", address, err)
	}
	return "0x" + hex.EncodeToString(code), nil
}

// Owner calls the owner() accessor on the contract and returns the result.
// Contracts without an owner() function return an error.
func (c *Client) Owner(ctx context.Context, address string) (common.Address, error) {
	to := common.HexToAddress(address)
	out, err := c.ethClient.CallContract(ctx, ethereum.CallMsg{
		To:   &to,
		Data: ownerSelector,
	}, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("call owner() on %s: %w", address, err)
	}
	if len(out) < 32 {
		return common.Address{}, fmt.Errorf("owner() on %s: short return (%d bytes)", address, len(out))
	}
	return common.BytesToAddress(out[12:32]), nil
}
