/*
Package observability provides tools for monitoring the questionnaire engine.

It includes Prometheus collectors for session and question lifecycle events,
exposed as LifecycleHooks so they plug straight into the engine, and a helper
for combining several hook sets into one.
*/
package observability
