// Package fetch retrieves remote resources (fonts, images, templates) as
// raw bytes.
//
// A Fetcher turns a URL into bytes. HTTP is the network implementation;
// Cached wraps any Fetcher with a byte Store so repeated renders do not
// hit the network. Two stores are provided: MemoryStore, an in-process
// LRU, and RedisStore, shared across processes through Redis.
//
//	f := fetch.Cached{
//		Fetcher: fetch.NewHTTP(fetch.WithUserAgent("cardgen/1.0")),
//		Store:   fetch.NewMemoryStore(64),
//		TTL:     time.Hour,
//	}
//	data, err := f.Fetch(ctx, "https://example.com/logo.png")
//
// Failures are reported as *Error carrying the URL and, for HTTP
// responses, the status code. Requests are never retried.
package fetch
