package domain

// NetworkConfiguration is the provider-side shape of a subscription's network
// configuration, independent of any SDK. Ordered slices keep provider order.
type NetworkConfiguration struct {
	RequestID           string
	DNSServers          []DNSServer
	LocalNetworkSites   []LocalNetworkSite
	VirtualNetworkSites []VirtualNetworkSite
}

type DNSServer struct {
	Name      string
	IPAddress string
}

type LocalNetworkSite struct {
	Name              string
	VPNGatewayAddress string
	AddressSpace      []string
}

type VirtualNetworkSite struct {
	Name                 string
	Label                string
	Location             string
	AffinityGroup        string
	AddressSpace         []string
	Subnets              []Subnet
	DNSServersReferences []string
	// Gateway is nil when the network has no gateway.
	Gateway *Gateway
}

type Subnet struct {
	Name          string
	AddressPrefix string
}

type Gateway struct {
	// Profile and ConnectionType values are free-form provider strings;
	// the output mapper validates them.
	Profile                   string
	VPNClientAddressPool      []string
	ConnectionsToLocalNetwork []LocalNetworkConnection
}

type LocalNetworkConnection struct {
	Name           string
	ConnectionType string
}

// OperationStatus describes the provider operation that served a request.
type OperationStatus struct {
	ID     string
	Status string
}
