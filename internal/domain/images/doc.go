// Package images manages pictures attached to services, products and
// conversations: upload limits, ordering, soft deletion and alt text.
package images
