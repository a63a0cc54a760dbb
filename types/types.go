package types

// Keys of the persisted session store.
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)

// KeyValueStore is the persisted local store holding the session. Get returns
// "" for a missing key.
type KeyValueStore interface {
	Get(key string) string
	Set(key, value string) error
	Remove(key string) error
}

// Notifier is the host that shows transient messages and performs
// navigation. The transport only decides when to call it.
type Notifier interface {
	Toast(msg string)
	NavigateTo(route string)
}
