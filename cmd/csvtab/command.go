package main

import (
	"log/slog"
	"strings"

	"github.com/vegasq/csvtab/internal/query"
	"github.com/vegasq/csvtab/internal/reader"
)

// environment carries what every command shares besides the dataset
type environment struct {
	log     *slog.Logger
	coercer *query.Coercer
}

// command is one CLI mode operating on the loaded dataset
type command interface {
	Name() string
	Execute(ds *reader.Dataset, env *environment) (*reader.Dataset, error)
}

// selectCommand parses the condition flags and picks the mode:
// --aggregate wins over --where, which wins over plain listing. When both
// are set the filter runs first and the aggregate sees only matching rows.
func selectCommand(cfg *cliConfig) (command, error) {
	var where *query.Condition
	if cfg.where != "" {
		cond, err := query.ParseCondition(cfg.where)
		if err != nil {
			return nil, err
		}
		where = cond
	}

	if cfg.aggregate != "" {
		spec, err := query.ParseCondition(cfg.aggregate)
		if err != nil {
			return nil, err
		}
		return &aggregateCommand{where: where, spec: spec, precision: cfg.precision}, nil
	}

	if where != nil {
		return &filterCommand{where: where}, nil
	}
	return listCommand{}, nil
}

// listCommand prints the dataset unchanged
type listCommand struct{}

func (listCommand) Name() string { return "list" }

func (listCommand) Execute(ds *reader.Dataset, _ *environment) (*reader.Dataset, error) {
	return ds, nil
}

// filterCommand keeps the rows matching one condition
type filterCommand struct {
	where *query.Condition
}

func (c *filterCommand) Name() string { return "filter" }

func (c *filterCommand) Execute(ds *reader.Dataset, env *environment) (*reader.Dataset, error) {
	return filter(ds, c.where, env)
}

// aggregateCommand computes one statistic, optionally over filtered rows
type aggregateCommand struct {
	where     *query.Condition
	spec      *query.Condition
	precision int
}

func (c *aggregateCommand) Name() string { return "aggregate" }

func (c *aggregateCommand) Execute(ds *reader.Dataset, env *environment) (*reader.Dataset, error) {
	rows, err := filter(ds, c.where, env)
	if err != nil {
		return nil, err
	}

	result, err := query.Aggregate(rows, c.spec, env.coercer)
	if err != nil {
		return nil, err
	}
	env.log.Debug("aggregate computed",
		"function", string(result.Function), "column", result.Column, "value", result.Value.String())

	return result.Round(c.precision).Dataset(), nil
}

func filter(ds *reader.Dataset, where *query.Condition, env *environment) (*reader.Dataset, error) {
	if query.MissingColumn(ds, where) {
		env.log.Warn("filter column not found in header, no rows will match",
			"column", where.Column, "available", strings.Join(ds.Columns, ", "))
	}
	return query.ApplyFilter(ds, where, env.coercer)
}
