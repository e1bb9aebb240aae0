package playback

import (
	"github.com/patrickprogramme/subshare/internal/timeline"
)

// Source indique ce qui a provoqué un Snapshot.
type Source int

const (
	SourceSample     Source = iota // échantillon du temps de lecture
	SourceNavigation               // action utilisateur (step, jump)
)

func (s Source) String() string {
	if s == SourceNavigation {
		return "navigation"
	}
	return "sample"
}

// Snapshot est l'état diffusé aux vues après chaque recalcul.
//
// Active est l'index retenu pour l'incrustation : il n'est jamais remis à
// zéro sur un échantillon sans correspondance (Hit == false). List est le
// résultat de la recherche en intervalle ouvert, sans mémoire.
type Snapshot struct {
	Time   float64
	Active int // -1 si la piste est vide
	Hit    bool
	List   int
	ListOK bool
	Source Source
}

// Listener reçoit chaque Snapshot, dans la boucle d'événements de l'appelant.
type Listener func(Snapshot)

// Sync associe une piste à un lecteur. Une nouvelle piste implique un nouveau Sync.
type Sync struct {
	track     timeline.Track
	player    Player
	active    int
	last      Snapshot
	listeners []Listener
}

// NewSync démarre sur le premier segment si la piste n'est pas vide.
func NewSync(track timeline.Track, player Player) *Sync {
	s := &Sync{track: track, player: player, active: -1}
	if !track.IsEmpty() {
		s.active = 0
	}
	s.last = Snapshot{Active: s.active, List: -1}
	return s
}

// Subscribe ajoute un listener ; il n'est jamais retiré et
// vit aussi longtemps que le Sync.
func (s *Sync) Subscribe(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

func (s *Sync) Track() timeline.Track {
	return s.track
}

// Active retourne l'index actif ; ok == false uniquement pour une piste vide.
func (s *Sync) Active() (int, bool) {
	return s.active, s.active >= 0
}

// Last retourne le dernier Snapshot diffusé.
func (s *Sync) Last() Snapshot {
	return s.last
}

// Sample recalcule l'état pour le temps t et notifie les vues.
func (s *Sync) Sample(t float64) Snapshot {
	idx, hit := s.track.ActiveForOverlay(t)
	if hit {
		s.active = idx
	}
	return s.publish(t, hit, SourceSample)
}

// Poll échantillonne le temps courant du lecteur.
func (s *Sync) Poll() Snapshot {
	return s.Sample(s.player.CurrentTime())
}

// StepNext passe au segment suivant avec un seek exact.
// Sans effet (false, aucun seek) sur le dernier segment.
func (s *Sync) StepNext() bool {
	return s.step(s.active + 1)
}

// StepPrevious passe au segment précédent avec un seek exact.
// Sans effet (false, aucun seek) sur le premier segment.
func (s *Sync) StepPrevious() bool {
	if s.active <= 0 {
		return false
	}
	return s.step(s.active - 1)
}

func (s *Sync) step(target int) bool {
	if s.active < 0 || target < 0 || target >= s.track.Len() {
		return false
	}
	s.navigate(target, true)
	return true
}

// JumpTo sélectionne le segment i (clic dans la liste) : seek non exact.
func (s *Sync) JumpTo(i int) bool {
	if i < 0 || i >= s.track.Len() {
		return false
	}
	s.navigate(i, false)
	return true
}

// ReplayCurrent relit la fenêtre [début, fin) du segment actif sans changer d'index.
func (s *Sync) ReplayCurrent() bool {
	seg, err := s.track.SegmentAt(s.active)
	if err != nil {
		return false
	}
	s.player.PlayWindow(seg.StartTime, seg.EndTime)
	return true
}

func (s *Sync) navigate(i int, exact bool) {
	seg := s.track.Segments[i]
	s.active = i
	s.player.Seek(seg.StartTime, exact)
	s.publish(seg.StartTime, true, SourceNavigation)
}

func (s *Sync) publish(t float64, hit bool, src Source) Snapshot {
	list, listOK := s.track.ActiveForListScroll(t)
	snap := Snapshot{
		Time:   t,
		Active: s.active,
		Hit:    hit,
		List:   list,
		ListOK: listOK,
		Source: src,
	}
	s.last = snap
	for _, l := range s.listeners {
		l(snap)
	}
	return snap
}
