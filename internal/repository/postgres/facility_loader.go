package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/placement-microservice/internal/domain"
)

// facilityColumns lists every catalog column in struct-tag order. The table
// mirrors the JSON seed schema; tag-set columns hold JSON arrays.
const facilityQuery = `
	SELECT id, name, stadt, bundesland, landkreis, latitude, longitude, adresse,
	       freie_plaetze, freie_plaetze_jetzt, reservierbar,
	       verfuegbar_ab, verfuegbar_monate,
	       alter_min, alter_max, geschlecht,
	       betreuungsart, hilfeform, aufnahmeart, zimmergroesse_qm,
	       einrichtungstyp, traeger,
	       inobhutnahme_geeignet, krisenplatz, notaufnahme_24_7,
	       einzelplatz_moeglich, kleingruppe,
	       keine_gewaltproblematik, keine_suchtthematik,
	       schulbesuch_moeglich, schulform_unterstuetzung, haustiere_erlaubt,
	       traumapaedagogik, psychiatrienahe_betreuung, autismus,
	       geistige_behinderung, koerperliche_einschraenkungen,
	       deutschkenntnisse_erforderlich, sprachunterstuetzung,
	       eins_zu_eins_moeglich, nachtbereitschaft, nachtdienst,
	       deeskalationserfahrung,
	       platz_bestaetigt_24h, platz_bestaetigt_3d, platz_bestaetigt_7d,
	       kontaktzeitfenster, kontakt_email, kontakt_telefon,
	       bild_url, beschreibung
	FROM facilities
	ORDER BY id`

// LoadFacilities reads the whole facility table once. The service calls
// this at startup only; the snapshot is served from memory afterwards and
// the database is never written to.
func LoadFacilities(ctx context.Context, db *DB) ([]domain.Facility, error) {
	var facilities []domain.Facility
	if err := db.SelectContext(ctx, &facilities, facilityQuery); err != nil {
		return nil, fmt.Errorf("failed to load facility catalog: %w", err)
	}

	db.logger.Info("Facility catalog loaded from PostgreSQL",
		zap.Int("facilities", len(facilities)))

	return facilities, nil
}
