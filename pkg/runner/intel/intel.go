package intel

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/crest/pkg/intel"
	"tableflip.dev/crest/pkg/printers"
)

type Analyze struct {
	File string
	Save bool

	Analyzer *intel.Analyzer
	Archive  *intel.Archive
}

func (n *Analyze) Do(ctx context.Context) error {
	if n.Analyzer == nil {
		return errors.New("can not analyze, no analyzer")
	}

	s, err := n.Analyzer.Analyze(ctx, n.File)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Summary(s)

	if n.Save {
		if n.Archive == nil {
			return errors.New("can not save, no archive")
		}
		key, err := n.Archive.Save(s)
		if err != nil {
			return err
		}
		fmt.Printf("saved as %s\n\n", key)
	}

	fmt.Println("Try asking:")
	pp.SuggestedQuestions(n.Analyzer.SuggestedQuestions())
	return nil
}

type Ask struct {
	Question string

	Analyzer *intel.Analyzer
}

func (n *Ask) Do(ctx context.Context) error {
	if n.Analyzer == nil {
		return errors.New("can not ask, no analyzer")
	}

	var c intel.Conversation
	if _, err := c.Exchange(ctx, n.Analyzer, n.Question); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Conversation(c.Messages())
	return nil
}

// Saved lists or shows archived summaries.
type Saved struct {
	Key string

	Archive *intel.Archive
}

func (n *Saved) Do(ctx context.Context) error {
	if n.Archive == nil {
		return errors.New("can not list saved analyses, no archive")
	}

	pp := printers.PrettyPrint{}
	if n.Key != "" {
		s, err := n.Archive.Load(n.Key)
		if err != nil {
			return err
		}
		fmt.Println("")
		pp.Summary(s)
		return nil
	}

	keys := n.Archive.Keys(ctx)
	if len(keys) == 0 {
		fmt.Println("no saved analyses")
		return nil
	}
	for _, key := range keys {
		fmt.Println(key)
	}
	return nil
}
