// Generated Go client. Do not edit by hand.

package circular

// Client talks to a node access gateway.
type Client struct {
	baseURL string
}

// NewClient creates a client for the given gateway URL.
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// CheckWallet verifies a wallet exists on the given chain.
func (c *Client) CheckWallet(blockchain, address string) (map[string]any, error) {
	return c.request("checkWallet")
}

// GetWallet fetches wallet details.
func (c *Client) GetWallet(blockchain, address string) (map[string]any, error) {
	return c.request("getWallet")
}

// GetLatestTransactions lists recent transactions for an address.
func (c *Client) GetLatestTransactions(blockchain, address string) (map[string]any, error) {
	return c.request("getLatestTransactions")
}

// SendTransaction submits a signed transaction.
func (c *Client) SendTransaction(tx map[string]any) (map[string]any, error) {
	return c.request("sendTransaction")
}

// GetBlock fetches one block by number.
func (c *Client) GetBlock(blockchain string, blockNumber uint64) (map[string]any, error) {
	return c.request("getBlock")
}

func (c *Client) request(endpoint string) (map[string]any, error) {
	return map[string]any{"endpoint": endpoint}, nil
}
