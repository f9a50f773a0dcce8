// Package analytics holds the campaign pipeline: filtering the four datasets
// under a FilterConfig, aggregating KPIs and per-influencer tables, and
// selecting headline insights.
//
// Every function is pure. Joins are inner joins: a tracking record whose
// influencer has no payout or roster entry is dropped from the joined table.
package analytics
