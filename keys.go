package approute

import "sort"

// A Key stashes values in a context.Context.
type Key string

const (
	// CurrentUserKey stashes the user associated with a session.
	CurrentUserKey Key = "CurrentUserKey"

	// IpAddrKey stashes the IP address of an HTTP request being handled.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// ResponderKey stashes the resp.Responder configured for the app.
	ResponderKey Key = "ResponderKey"

	// SessionKey stashes the session associated with an HTTP request.
	SessionKey Key = "SessionKey"
)

// Key returns the flat value of the Key so it can key a map[string].
func (k Key) Key() string { return string(k) }

// String formats the stringified key with additional contextual information.
func (k Key) String() string {
	return "approute context key: " + string(k)
}

// ByKey is a sortable collection of Keys.
type ByKey []Key

var _ sort.Interface = ByKey{}

func (ks ByKey) Len() int           { return len(ks) }
func (ks ByKey) Swap(i, j int)      { ks[i], ks[j] = ks[j], ks[i] }
func (ks ByKey) Less(i, j int) bool { return ks[i] < ks[j] }

// UniqueSort sorts the set of Keys, eliminating duplicates and zero-values.
func (ks ByKey) UniqueSort() ByKey {
	uniqued := make(ByKey, 0, len(ks))
	seen := make(map[Key]struct{}, len(ks))
	for _, k := range ks {
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		uniqued = append(uniqued, k)
	}

	sort.Sort(uniqued)
	return uniqued
}
