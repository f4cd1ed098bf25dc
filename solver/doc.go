// Package solver wraps the crucible search for callers that want more than
// a number: named parameter sets, configuration from YAML and the
// environment, concurrent solving of several sets, structured logs,
// Prometheus metrics and OpenTelemetry spans.
//
// Variants:
//
//   - Crucible ("crucible", alias "first"): runs of 1..3 cells.
//   - UltraCrucible ("ultra", alias "second"): runs of 4..10 cells.
//   - A "custom" variant comes from Config.Custom or CRUCIBLE_MIN_RUN /
//     CRUCIBLE_MAX_RUN.
//
// Configuration precedence, lowest first: DefaultConfig, the YAML file
// passed to LoadConfig, a .env file in the working directory, CRUCIBLE_*
// environment variables.
//
// Metrics (registered on the default Prometheus registry):
//
//   - crucible_solves_total{variant,result}
//   - crucible_solve_duration_seconds{variant}
//   - crucible_settled_states{variant}
//
// Errors:
//
//   - ErrUnknownVariant: a preset name that is not registered.
//   - ErrInvalidConfig: malformed YAML or out-of-range values.
//   - Search failures from crucible and costgrid are wrapped, not replaced.
package solver
