// Package connector provides object storage connectors for uploaded images.
package connector
