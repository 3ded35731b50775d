package models

import "time"

// These structs define the Firestore document layout for a persisted
// reviewer. A reviewer lives at users/{uid}/folders/{folder}/reviewers/{id};
// acronym groups and quiz questions are nested subcollections under it. All
// records for one request are written in a single atomic batch and never
// mutated by this pipeline afterwards.

// ReviewerRecord is the root document of an acronym or terms reviewer.
type ReviewerRecord struct {
	ID        string    `firestore:"id"`
	Title     string    `firestore:"title"`
	CreatedAt time.Time `firestore:"createdAt"`
	StartDate time.Time `firestore:"startDate"`
}

// EmbeddedReviewerRecord is the root document of a summarize or explain
// reviewer. The whole parsed result is embedded as the sole element of
// Reviewers rather than decomposed into subcollections.
type EmbeddedReviewerRecord struct {
	ID        string    `firestore:"id"`
	Reviewers []any     `firestore:"reviewers"`
	CreatedAt time.Time `firestore:"createdAt"`
	StartDate time.Time `firestore:"startDate"`
}

// AcronymGroupRecord is one content document under an acronym reviewer,
// keyed by the group's own id.
type AcronymGroupRecord struct {
	ID        string `firestore:"id"`
	KeyPhrase string `firestore:"keyPhrase"`
	Title     string `firestore:"title"`
}

// AcronymItemRecord is one leaf document under a group's contents
// subcollection, keyed by its zero-based position.
type AcronymItemRecord struct {
	Letter string `firestore:"letter"`
	Word   string `firestore:"word"`
}

// QuestionRecord is one question document under a terms reviewer.
type QuestionRecord struct {
	Term       string             `firestore:"term"`
	Definition []DefinitionOption `firestore:"definition"`
}

// CounterRecord documents the shape of the per-user counters document at
// users/{uid}/meta/counters. It is created lazily with all fields zero and
// mutated only inside the allocation transaction.
type CounterRecord struct {
	AcronymCounter       int64 `firestore:"acronymCounter"`
	TermCounter          int64 `firestore:"termCounter"`
	SummarizationCounter int64 `firestore:"summarizationCounter"`
	AICounter            int64 `firestore:"aiCounter"`
}
