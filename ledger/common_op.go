// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

func loadRegistry(c *OpContext) (*Registry, error) {
	r, has, err := GetRegistry(c.Database)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotInitialized
	}
	return r, nil
}

func adminOnly(c *OpContext) (*Registry, error) {
	r, err := loadRegistry(c)
	if err != nil {
		return nil, err
	}
	if !r.IsAdmin(c.Sender) {
		return nil, ErrUnauthorized
	}
	return r, nil
}

func notPaused(r *Registry) error {
	if r.Paused {
		return ErrPaused
	}
	return nil
}

func loadQuest(c *OpContext, questID string) (*Quest, error) {
	q, has, err := GetQuest(c.Database, questID)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrQuestMissing
	}
	return q, nil
}
