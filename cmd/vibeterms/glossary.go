package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/bobmcallan/vibeterms/internal/app"
	"github.com/bobmcallan/vibeterms/internal/models"
)

var errTermNotFound = errors.New("term not found")

// glossary is what the commands need from either the local app or a server.
type glossary interface {
	Search(ctx context.Context, category models.Category, query string) ([]models.Term, error)
	Get(ctx context.Context, id string) (models.Term, error)
	Generate(ctx context.Context, keyword string) (models.Term, error)
	Explain(ctx context.Context, id, question string) (models.ExplainResult, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
	SetKey(ctx context.Context, key string) error
	MaskedKey(ctx context.Context) (string, error)
	Close()
}

// opener builds the glossary for one command invocation.
type opener func(configPath, serverURL string) (glossary, error)

func openGlossary(configPath, serverURL string) (glossary, error) {
	if serverURL != "" {
		return newRemoteGlossary(serverURL), nil
	}
	a, err := app.NewApp(configPath)
	if err != nil {
		return nil, err
	}
	return &localGlossary{app: a}, nil
}

// localGlossary runs commands in-process against the configured storage.
type localGlossary struct {
	app *app.App
}

func (l *localGlossary) Search(_ context.Context, category models.Category, query string) ([]models.Term, error) {
	return l.app.Catalog.Search(category, query), nil
}

func (l *localGlossary) Get(_ context.Context, id string) (models.Term, error) {
	term, ok := l.app.Catalog.Get(id)
	if !ok {
		return models.Term{}, fmt.Errorf("%w: %s", errTermNotFound, id)
	}
	return term, nil
}

func (l *localGlossary) Generate(ctx context.Context, keyword string) (models.Term, error) {
	res := l.app.GenerateTerm(ctx, keyword)
	if !res.OK() {
		return models.Term{}, errors.New(app.GenerateFailureMessage(res.Failure))
	}
	return *res.Term, nil
}

func (l *localGlossary) Explain(ctx context.Context, id, question string) (models.ExplainResult, error) {
	res, found := l.app.ExplainTerm(ctx, id, question)
	if !found {
		return models.ExplainResult{}, fmt.Errorf("%w: %s", errTermNotFound, id)
	}
	return res, nil
}

func (l *localGlossary) Delete(ctx context.Context, id string) error {
	l.app.Catalog.DeleteTerm(ctx, id)
	return nil
}

func (l *localGlossary) Reset(ctx context.Context) error {
	l.app.Catalog.Reset(ctx)
	return nil
}

func (l *localGlossary) SetKey(ctx context.Context, key string) error {
	return l.app.Settings.SetAPIKey(ctx, key)
}

func (l *localGlossary) MaskedKey(ctx context.Context) (string, error) {
	return l.app.Settings.Masked(ctx), nil
}

func (l *localGlossary) Close() {
	l.app.Close()
}
