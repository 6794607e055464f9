package vnetconfig

import "encoding/xml"

const Namespace = "http://schemas.microsoft.com/ServiceHosting/2011/07/NetworkConfiguration"

// NetworkConfiguration is the legacy network configuration document.
type NetworkConfiguration struct {
	XMLName                     xml.Name                    `xml:"http://schemas.microsoft.com/ServiceHosting/2011/07/NetworkConfiguration NetworkConfiguration"`
	VirtualNetworkConfiguration VirtualNetworkConfiguration `xml:"VirtualNetworkConfiguration"`
}

type VirtualNetworkConfiguration struct {
	DNS                 DNS                  `xml:"Dns"`
	LocalNetworkSites   []LocalNetworkSite   `xml:"LocalNetworkSites>LocalNetworkSite"`
	VirtualNetworkSites []VirtualNetworkSite `xml:"VirtualNetworkSites>VirtualNetworkSite"`
}

type DNS struct {
	DNSServers []DNSServer `xml:"DnsServers>DnsServer"`
}

type DNSServer struct {
	Name      string `xml:"name,attr"`
	IPAddress string `xml:"IPAddress,attr"`
}

type LocalNetworkSite struct {
	Name              string   `xml:"name,attr"`
	AddressSpace      []string `xml:"AddressSpace>AddressPrefix"`
	VPNGatewayAddress string   `xml:"VPNGatewayAddress,omitempty"`
}

type VirtualNetworkSite struct {
	Name                   string                  `xml:"name,attr"`
	AffinityGroup          string                  `xml:"AffinityGroup,attr,omitempty"`
	Location               string                  `xml:"Location,attr,omitempty"`
	AddressSpace           []string                `xml:"AddressSpace>AddressPrefix"`
	Subnets                []Subnet                `xml:"Subnets>Subnet"`
	DNSServersRef          []DNSServerRef          `xml:"DnsServersRef>DnsServerRef"`
	InternetGatewayNetwork *InternetGatewayNetwork `xml:"InternetGatewayNetwork,omitempty"`
	Gateway                *Gateway                `xml:"Gateway,omitempty"`
}

type Subnet struct {
	Name          string `xml:"name,attr"`
	AddressPrefix string `xml:"AddressPrefix"`
}

type DNSServerRef struct {
	Name string `xml:"name,attr"`
}

// InternetGatewayNetwork carries the site label.
type InternetGatewayNetwork struct {
	Name string `xml:"name,attr"`
}

type Gateway struct {
	Profile                   GatewaySize           `xml:"profile,attr"`
	VPNClientAddressPool      []string              `xml:"VPNClientAddressPool>AddressPrefix"`
	ConnectionsToLocalNetwork []LocalNetworkSiteRef `xml:"ConnectionsToLocalNetwork>LocalNetworkSiteRef"`
}

type LocalNetworkSiteRef struct {
	Name       string       `xml:"name,attr"`
	Connection []Connection `xml:"Connection"`
}

type Connection struct {
	Type ConnectionType `xml:"type,attr"`
}

type GatewaySize string

const (
	GatewaySizeSmall      GatewaySize = "Small"
	GatewaySizeMedium     GatewaySize = "Medium"
	GatewaySizeLarge      GatewaySize = "Large"
	GatewaySizeExtraLarge GatewaySize = "ExtraLarge"
)

var gatewaySizes = []GatewaySize{GatewaySizeSmall, GatewaySizeMedium, GatewaySizeLarge, GatewaySizeExtraLarge}

type ConnectionType string

const (
	ConnectionTypeIPsec     ConnectionType = "IPsec"
	ConnectionTypeDedicated ConnectionType = "Dedicated"
)

var connectionTypes = []ConnectionType{ConnectionTypeIPsec, ConnectionTypeDedicated}
