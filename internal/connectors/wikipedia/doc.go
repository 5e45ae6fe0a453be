// Package wikipedia implements the ArticleSource port against the
// MediaWiki extracts API of the French Wikipedia.
//
// One GET per article title, asking for a plain-text extract with
// redirect following. The response keys its single page by an opaque
// page id; the client takes whichever key is present. Failures are
// returned to the caller, which is expected to swallow them: an
// article that cannot be fetched simply never appears.
package wikipedia
