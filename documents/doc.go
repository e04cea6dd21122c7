/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package documents provides a client for submitting documents to the registry API.
//
// Every Client.Submit call first acquires a slot from the client side rate limiter
// shared by all goroutines that use the same Client, then serializes the document
// and sends it with a single HTTP POST request. Submissions are never retried,
// and a slot consumed by a failed submission is never given back.
package documents
