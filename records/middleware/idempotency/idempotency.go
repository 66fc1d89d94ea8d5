package idempotency

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/records/model"
)

var IDEMPOTENCY_HEADER = "X-Idempotency-Key"

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

// IdempotencyMiddleware makes the call-event endpoints safe against
// redelivery: the same key replays the original response instead of
// re-inserting the record, and a key reused with a different body is a
// conflict.
//
//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := generateBodyHash(req)

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	entry, cacheErr := IdempotencyCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			return processNewEvent(req, next, cacheKey, bodyHash)
		}

		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return handleExistingEntry(req, next, entry, bodyHash, idempotencyKey)
}

// processNewEvent marks the key as in flight, runs the handler and caches the
// outcome. A failed insert clears the key so the switch can retry.
func processNewEvent(req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	if err := IdempotencyCache.Set(req.Context(), cacheKey, model.IdempotencyCacheEntry{
		Status:    statusProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark call event as processing", "error", err)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}}
	}

	response := next(req)

	if response.Err != nil {
		if _, deleteErr := IdempotencyCache.Delete(req.Context(), cacheKey); deleteErr != nil {
			rlog.Error("failed to clear failed call event from cache", "error", deleteErr)
		}
		return response
	}

	markAsCompleted(req.Context(), cacheKey, bodyHash, response)
	return response
}

func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, idempotencyKey string) middleware.Response {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch entry.Status {
	case statusProcessing:
		rlog.Info("concurrent call event delivery detected", "key", idempotencyKey)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case statusCompleted:
		if response, ok := replayCachedResponse(req, entry); ok {
			rlog.Info("replaying cached response for redelivered call event", "key", idempotencyKey)
			return response
		}
		return next(req)
	default:
		rlog.Warn("unknown cache entry status, processing as new request", "key", idempotencyKey, "status", entry.Status)
		return next(req)
	}
}

// replayCachedResponse rebuilds the cached payload into the endpoint's
// response type via the API metadata.
func replayCachedResponse(req middleware.Request, entry model.IdempotencyCacheEntry) (middleware.Response, bool) {
	if len(entry.Response) == 0 {
		return middleware.Response{}, false
	}

	responseType := req.Data().API.ResponseType
	if responseType == nil {
		return middleware.Response{}, false
	}

	responseValue := reflect.New(responseType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, responseValue); err != nil {
		rlog.Error("failed to unmarshal cached response", "error", err)
		return middleware.Response{}, false
	}

	return middleware.Response{Payload: responseValue}, true
}

func markAsCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, response middleware.Response) {
	completedEntry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		completedEntry.Response = payloadBytes
	}

	if err := IdempotencyCache.Set(ctx, cacheKey, completedEntry); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
	}
}

// extractIdempotencyKey reads and validates the idempotency key header
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		idempotencyKey = strings.TrimSpace(headers.Get(IDEMPOTENCY_HEADER))
	}

	if idempotencyKey == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}

	return idempotencyKey, nil
}

// generateBodyHash hashes the request body for conflict detection
func generateBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}

	hash := md5.Sum(bodyBytes)
	return hex.EncodeToString(hash[:])
}
