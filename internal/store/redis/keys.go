package redis

const (
	// KeyPrefix namespaces every key written by startpage
	KeyPrefix = "startpage:"
	// KeyDocument holds the JSON snapshot of the served document
	KeyDocument = KeyPrefix + "document"
	// KeyDocumentMeta holds the publication metadata hash
	KeyDocumentMeta = KeyPrefix + "document:meta"
)

// Hash fields of KeyDocumentMeta
const (
	MetaSource      = "source"
	MetaLinks       = "links"
	MetaPublishedAt = "published_at"
)

// DocumentKey returns the Redis key for the document snapshot
func DocumentKey() string {
	return KeyDocument
}

// DocumentMetaKey returns the Redis key for the snapshot metadata
func DocumentMetaKey() string {
	return KeyDocumentMeta
}
