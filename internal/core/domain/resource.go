package domain

import "fmt"

// ResourceRef is the identity key of a cloud resource. An empty Name refers
// to every resource of the kind in the group, an empty group to the whole
// subscription.
type ResourceRef struct {
	Kind          ResourceKind
	ResourceGroup string
	Name          string
}

func (r ResourceRef) String() string {
	label := r.Kind.Label()
	switch {
	case r.Name != "" && r.ResourceGroup != "":
		return fmt.Sprintf("%s '%s' in resource group '%s'", label, r.Name, r.ResourceGroup)
	case r.Name != "":
		return fmt.Sprintf("%s '%s'", label, r.Name)
	case r.ResourceGroup != "":
		return fmt.Sprintf("%s in resource group '%s'", label, r.ResourceGroup)
	}
	return label + " in subscription"
}

// Session is the subscription context a command runs against. It is built
// once per process and never mutated afterwards.
type Session struct {
	SubscriptionID       string
	TenantID             string
	DefaultResourceGroup string
}

// ResourceGroupOr returns rg, or the session default when rg is empty.
func (s Session) ResourceGroupOr(rg string) string {
	if rg != "" {
		return rg
	}
	return s.DefaultResourceGroup
}
