package game

// resolveCollisions runs the pairwise proximity tests over the current,
// pre-prune collections. Order is fixed: rocks against the player, then
// every rock/shot pair, then wormholes against the player.
//
// Distance comparison is strict: actors exactly the sum of their radii
// apart do not collide.
func (s *State) resolveCollisions(events *[]Event) {
	for i := range s.rocks {
		rock := &s.rocks[i]
		if rock.Pos.Sub(s.player.Pos).Len() < s.player.BBox+rock.BBox {
			// Rock contact is instant death, no partial damage.
			s.player.Life = 0
		}
	}

	for i := range s.rocks {
		rock := &s.rocks[i]
		for j := range s.shots {
			shot := &s.shots[j]
			if shot.Pos.Sub(rock.Pos).Len() < shot.BBox+rock.BBox {
				shot.Life = 0
				rock.Life = 0
				s.score += RockScore
				*events = append(*events, Event{Kind: EventSoundHit})
			}
		}
	}

	for i := range s.wormholes {
		wormhole := &s.wormholes[i]
		if wormhole.Pos.Sub(s.player.Pos).Len() < s.player.BBox+wormhole.BBox {
			// Reaching the wormhole closes it silently; the level-end
			// check awards the score.
			wormhole.Life = 0
		}
	}
}
