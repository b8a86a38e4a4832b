// Package siteutil holds the small helpers shared by the site's page scripts:
// notifications, date and text formatting, form validation, upload checks,
// sharing and scroll thresholds. Everything here is a pure function of its inputs.
package siteutil
