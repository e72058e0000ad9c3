// Package pipeline executes a single packaging job.
//
// A job runs in two phases. The repo phase visits every repo in declared order:
// it resolves variables, clones the repo when its path is absent, synchronizes
// the target branch and runs the optional Maven build. The artifact phase then
// copies the declared outputs from the repos registered during the first phase.
//
// Every step is announced to a PlanSink before it runs, in real and dry-run
// mode alike. The first failing step aborts the job.
package pipeline
